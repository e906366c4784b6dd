package skilledhelpers

import (
	"net/url"

	"github.com/cespare/xxhash/v2"
)

// avatarColors are background/foreground pairs used for generated avatars.
var avatarColors = [][2]string{
	{"0D8ABC", "fff"},
	{"FFC107", "000"},
	{"4CAF50", "fff"},
	{"795548", "fff"},
	{"E91E63", "fff"},
	{"9C27B0", "fff"},
	{"607D8B", "fff"},
}

// AvatarURL returns a generated avatar image URL for name. The colours are
// picked from the name hash so the same name always gets the same avatar.
func AvatarURL(name string) string {
	c := avatarColors[xxhash.Sum64String(name)%uint64(len(avatarColors))]
	v := url.Values{}
	v.Set("name", name)
	v.Set("background", c[0])
	v.Set("color", c[1])
	v.Set("size", "200")
	return "https://ui-avatars.com/api/?" + v.Encode()
}
