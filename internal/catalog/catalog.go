package catalog

import (
	"fmt"
)

// Asset addressing
const (
	ImagesPathPrefix = "/images"
	ImageExtension   = ".png"
	FirstImageIndex  = 1
)

// Album describes a named collection of base images
type Album struct {
	ID         string `json:"id" yaml:"id"`
	HighResID  string `json:"high_res_id" yaml:"high_res_id"`
	Name       string `json:"name" yaml:"name"`
	ImageCount int    `json:"image_count" yaml:"image_count"`
}

// Image describes a single image of an album at both resolutions
type Image struct {
	ID         string `json:"id"`
	URL        string `json:"url"`          // low-res, used by the browse grid
	HighResURL string `json:"high_res_url"` // used as the caption base image
}

var albums = []Album{
	{ID: "menherachan", HighResID: "menherachanX2", Name: "Menhera-Chan", ImageCount: 920},
	{ID: "menherakun", HighResID: "menherakunX2", Name: "Menhera-Kun", ImageCount: 512},
	{ID: "yurundarachan", HighResID: "yurundarachanX2", Name: "Yurundara-Chan", ImageCount: 304},
	{ID: "yurundarakun", HighResID: "yurundarakunX2", Name: "Yurundara-Kun", ImageCount: 304},
	{ID: "oniichanisdonefor", HighResID: "oniichanisdonefor", Name: "Onii-Chan is Done For", ImageCount: 102},
}

// ListAlbums returns the catalog in display order
func ListAlbums() []Album {
	out := make([]Album, len(albums))
	copy(out, albums)
	return out
}

// Lookup returns the album with the given ID
func Lookup(id string) (Album, bool) {
	for _, a := range albums {
		if a.ID == id {
			return a, true
		}
	}
	return Album{}, false
}

// Expand returns the images of an album, one-based and in order.
// An unknown album yields an empty result.
func Expand(albumID string) []Image {
	album, ok := Lookup(albumID)
	if !ok {
		return nil
	}
	return album.Images()
}

// Images expands the album into its image descriptors
func (a Album) Images() []Image {
	if a.ImageCount <= 0 {
		return nil
	}

	images := make([]Image, 0, a.ImageCount)
	for i := FirstImageIndex; i <= a.ImageCount; i++ {
		images = append(images, Image{
			ID:         fmt.Sprintf("%s-%d", a.ID, i),
			URL:        ImageURL(a.ID, i),
			HighResURL: ImageURL(a.HighResID, i),
		})
	}
	return images
}

// ThumbnailURL returns the cover image shown for the album in the catalog view
func (a Album) ThumbnailURL() string {
	return ImageURL(a.HighResID, FirstImageIndex)
}

// ImageURL builds the asset path of an image: /images/<dir>/<index>.png
func ImageURL(dir string, index int) string {
	return fmt.Sprintf("%s/%s/%d%s", ImagesPathPrefix, dir, index, ImageExtension)
}

// Validate checks the catalog invariants: non-negative counts and unique IDs
func Validate(list []Album) error {
	ids := make(map[string]bool, len(list))
	highRes := make(map[string]bool, len(list))
	for _, a := range list {
		if a.ID == "" {
			return fmt.Errorf("album with empty id")
		}
		if a.ImageCount < 0 {
			return fmt.Errorf("album %s: negative image count %d", a.ID, a.ImageCount)
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate album id: %s", a.ID)
		}
		if highRes[a.HighResID] {
			return fmt.Errorf("duplicate high-res id: %s", a.HighResID)
		}
		ids[a.ID] = true
		highRes[a.HighResID] = true
	}
	return nil
}
