/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package transform

import (
	"encoding/json"
	"strconv"
	"strings"

	"dirpx.dev/dxstat/dxcore/errors"
	"dirpx.dev/dxstat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// DefaultAPIHost is the asset host used when none is configured.
const DefaultAPIHost = "https://api.opendota.com"

// AssetURLs builds image URLs for game assets. Transformations never build
// URLs themselves.
type AssetURLs interface {
	// ItemImage returns the image URL of an item, or "" when the item is
	// unknown.
	ItemImage(id int) string

	// HeroImage returns the image URL of a hero portrait in the requested
	// size, or "" when the hero is unknown.
	HeroImage(id int, size ImageSize) string
}

// Hero is the static metadata of a hero.
type Hero struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"localized_name" yaml:"localized_name"`
	// Image is the host-relative path of the full-size portrait, for example
	// "/apps/dota2/images/heroes/abaddon_full.png?".
	Image string `json:"img" yaml:"img"`
}

// Item is the static metadata of an item.
type Item struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"dname" yaml:"dname"`
	Image string `json:"img" yaml:"img"`
}

// HostAssets resolves asset paths against an API host.
type HostAssets struct {
	Host   string
	Heroes map[int]Hero
	Items  map[int]Item
}

var _ AssetURLs = HostAssets{}

// ItemImage returns Host followed by the item's image path.
func (a HostAssets) ItemImage(id int) string {
	item, ok := a.Items[id]
	if !ok || item.Image == "" {
		return ""
	}
	return a.host() + item.Image
}

// HeroImage swaps the "full.png?" suffix of the hero's portrait path for the
// suffix of size.
func (a HostAssets) HeroImage(id int, size ImageSize) string {
	hero, ok := a.Heroes[id]
	if !ok || hero.Image == "" {
		return ""
	}
	base := strings.TrimSuffix(strings.TrimSuffix(hero.Image, "?"), LargeSuffix)
	return a.host() + base + size.Suffix()
}

func (a HostAssets) host() string {
	if a.Host == "" {
		return DefaultAPIHost
	}
	return strings.TrimSuffix(a.Host, "/")
}

// ImageSize selects a hero portrait variant.
type ImageSize int

const (
	// Small is the 59x33 table icon.
	Small ImageSize = iota

	// Medium is the 205x105 card image.
	Medium

	// Large is the 256x144 full portrait.
	Large

	// Vert is the 235x272 vertical portrait.
	Vert
)

// Compile-time check that ImageSize implements model.Model interface.
var _ model.Model = (*ImageSize)(nil)

// String forms of ImageSize.
const (
	SmallStr  = "small"
	MediumStr = "medium"
	LargeStr  = "large"
	VertStr   = "vert"
)

// File suffixes of each ImageSize.
const (
	SmallSuffix  = "sb.png"
	MediumSuffix = "lg.png"
	LargeSuffix  = "full.png"
	VertSuffix   = "vert.jpg"
)

// String returns the lowercase name of s, or "unknown".
func (s ImageSize) String() string {
	switch s {
	case Small:
		return SmallStr
	case Medium:
		return MediumStr
	case Large:
		return LargeStr
	case Vert:
		return VertStr
	default:
		return "unknown"
	}
}

// Suffix returns the file suffix appended to a hero's image base name. Values
// outside the defined set use the Small suffix.
func (s ImageSize) Suffix() string {
	switch s {
	case Medium:
		return MediumSuffix
	case Large:
		return LargeSuffix
	case Vert:
		return VertSuffix
	default:
		return SmallSuffix
	}
}

// ParseImageSize accepts the names "small", "medium", "large" and "vert" in
// any case.
func ParseImageSize(s string) (ImageSize, error) {
	switch strings.ToLower(s) {
	case SmallStr:
		return Small, nil
	case MediumStr:
		return Medium, nil
	case LargeStr:
		return Large, nil
	case VertStr:
		return Vert, nil
	default:
		return Small, &errors.ParseError{Type: "ImageSize", Value: s}
	}
}

// Valid reports whether s is a defined size.
func (s ImageSize) Valid() bool {
	return s >= Small && s <= Vert
}

// TypeName returns "ImageSize".
func (s ImageSize) TypeName() string {
	return "ImageSize"
}

// IsZero reports whether s is Small.
func (s ImageSize) IsZero() bool {
	return s == Small
}

// Validate returns a *ValidationError for values outside the defined set.
func (s ImageSize) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{Type: "ImageSize", Reason: "invalid ImageSize value", Value: int(s)}
	}
	return nil
}

// MarshalJSON encodes s as its name.
func (s ImageSize) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "ImageSize", Value: int(s)}
	}
	return []byte(strconv.Quote(s.String())), nil
}

// UnmarshalJSON decodes a name accepted by ParseImageSize.
func (s *ImageSize) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "ImageSize", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseImageSize(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes s as its name.
func (s ImageSize) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "ImageSize", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a name accepted by ParseImageSize.
func (s *ImageSize) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "ImageSize", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseImageSize(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
