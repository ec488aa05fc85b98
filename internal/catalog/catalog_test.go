package catalog

import (
	"fmt"
	"testing"
)

func TestListAlbums(t *testing.T) {
	list := ListAlbums()
	if len(list) != 5 {
		t.Fatalf("Expected 5 albums, got %d", len(list))
	}

	if list[0].ID != "menherachan" {
		t.Errorf("Expected first album to be menherachan, got %s", list[0].ID)
	}

	// Mutating the result must not touch the catalog
	list[0].Name = "changed"
	if ListAlbums()[0].Name != "Menhera-Chan" {
		t.Error("ListAlbums should return a copy of the catalog")
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := Validate(ListAlbums()); err != nil {
		t.Fatalf("Built-in catalog should be valid, got %v", err)
	}

	tests := []struct {
		name   string
		albums []Album
	}{
		{"negative count", []Album{{ID: "a", HighResID: "a2", ImageCount: -1}}},
		{"duplicate id", []Album{{ID: "a", HighResID: "a2"}, {ID: "a", HighResID: "b2"}}},
		{"duplicate high-res id", []Album{{ID: "a", HighResID: "x"}, {ID: "b", HighResID: "x"}}},
		{"empty id", []Album{{HighResID: "x"}}},
	}

	for _, test := range tests {
		if err := Validate(test.albums); err == nil {
			t.Errorf("Validate(%s) expected error, got nil", test.name)
		}
	}
}

func TestExpand(t *testing.T) {
	for _, album := range ListAlbums() {
		images := Expand(album.ID)
		if len(images) != album.ImageCount {
			t.Errorf("Expand(%s) returned %d images, expected %d", album.ID, len(images), album.ImageCount)
			continue
		}

		for i, img := range images {
			index := i + 1
			expectedID := fmt.Sprintf("%s-%d", album.ID, index)
			if img.ID != expectedID {
				t.Errorf("image %d: ID = %s, expected %s", i, img.ID, expectedID)
			}
			expectedURL := fmt.Sprintf("/images/%s/%d.png", album.ID, index)
			if img.URL != expectedURL {
				t.Errorf("image %d: URL = %s, expected %s", i, img.URL, expectedURL)
			}
			expectedHigh := fmt.Sprintf("/images/%s/%d.png", album.HighResID, index)
			if img.HighResURL != expectedHigh {
				t.Errorf("image %d: HighResURL = %s, expected %s", i, img.HighResURL, expectedHigh)
			}
		}
	}
}

func TestExpand_UnknownAlbum(t *testing.T) {
	for _, id := range []string{"", "nope", "MENHERACHAN"} {
		if images := Expand(id); len(images) != 0 {
			t.Errorf("Expand(%q) returned %d images, expected none", id, len(images))
		}
	}
}

func TestExpand_Deterministic(t *testing.T) {
	a := Expand("oniichanisdonefor")
	b := Expand("oniichanisdonefor")
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("image %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAlbumImages_ZeroCount(t *testing.T) {
	album := Album{ID: "empty", HighResID: "emptyX2"}
	if images := album.Images(); len(images) != 0 {
		t.Errorf("Expected no images for empty album, got %d", len(images))
	}
}

func TestThumbnailURL(t *testing.T) {
	album, ok := Lookup("menherakun")
	if !ok {
		t.Fatal("Expected menherakun to exist")
	}

	expected := "/images/menherakunX2/1.png"
	if album.ThumbnailURL() != expected {
		t.Errorf("ThumbnailURL() = %s, expected %s", album.ThumbnailURL(), expected)
	}
}
