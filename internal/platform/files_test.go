package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "memes", "batch")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	if IsAndroid() {
		t.Skip("Android uses external storage")
	}

	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestResolveExistingFile(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "1.png")
	if err := os.WriteFile(existing, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing file", existing, false},
		{"existing directory", tempDir, false},
		{"missing file", filepath.Join(tempDir, "2.png"), true},
		{"empty path", "", true},
	}

	for _, test := range tests {
		got, err := ResolveExistingFile(test.path)
		if test.wantErr {
			if err == nil || !strings.Contains(err.Error(), "file does not exist") {
				t.Errorf("%s: expected 'file does not exist' error, got %v", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("%s: expected absolute path, got %s", test.name, got)
		}
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Error message should contain 'file does not exist', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	if err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestOpenDirectory_NonExistent(t *testing.T) {
	if err := OpenDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for non-existent directory, got nil")
	}
}
