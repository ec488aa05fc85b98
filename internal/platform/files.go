package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"k8s.io/klog/v2"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidAM       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// LinuxFileManagers are tried in order when xdg-open fails
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// Android gallery and picture MIME type
const (
	AndroidImageMIME = "image/*"
	AndroidPNGMIME   = "image/png"
)

// IsAndroid reports whether the process runs on Android, including Fyne
// builds that report linux
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// ResolveExistingFile returns the absolute path of filePath if it exists
func ResolveExistingFile(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file does not exist: empty path")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := ResolveExistingFile(filePath)
	if err != nil {
		return err
	}

	if IsAndroid() {
		return openDirectoryAndroid(filepath.Dir(absPath))
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		// selection is not standardized on Linux, open the parent directory
		return openDirectoryLinux(filepath.Dir(absPath))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// OpenDirectory opens dir in the system file manager
func OpenDirectory(dir string) error {
	absDir, err := ResolveExistingFile(dir)
	if err != nil {
		return err
	}

	if IsAndroid() {
		return openDirectoryAndroid(absDir)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absDir).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absDir).Run()
	case OSLinux:
		return openDirectoryLinux(absDir)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func openDirectoryLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

func openDirectoryAndroid(dir string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", "content://com.android.externalstorage.documents/root/primary/Download"},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + dir},
		{"start", "-n", "com.google.android.documentsui/.DocumentsActivity", "-d", "file://" + dir},
	}
	for _, args := range attempts {
		if err := exec.Command(AndroidAM, args...).Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file in manager: no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default image viewer
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := ResolveExistingFile(filePath)
	if err != nil {
		return err
	}

	if IsAndroid() {
		return openFileWithDefaultAppAndroid(absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func openFileWithDefaultAppAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-n", "com.android.gallery3d/.app.GalleryActivity", "-d", "file://" + filePath},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", AndroidPNGMIME},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath, "-t", AndroidImageMIME},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filePath},
	}
	for _, args := range attempts {
		if err := exec.Command(AndroidAM, args...).Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file with any method: no suitable app found")
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if IsAndroid() {
		// external storage so exports show up in the gallery
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// NotifyMediaScanner tells the Android media scanner about a new image so it
// appears in the gallery. It is a no-op on other platforms.
func NotifyMediaScanner(filePath string) {
	if !IsAndroid() {
		return
	}

	cmd := exec.Command(AndroidAM, "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)
	go func() {
		if err := cmd.Run(); err != nil {
			klog.Warningf("Failed to notify media scanner about %s: %v", filePath, err)
		}
	}()
}
