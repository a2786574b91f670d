// Package gallery assembles artifacts and maps them onto rooms.
//
// A display id is the seed of one artifact. Displays are grouped four to a
// room, starting at room 1:
//
//	room 1 -> displays 1, 2, 3, 4
//	room 2 -> displays 5, 6, 7, 8
//
// [Generate] runs the image and text synthesizers independently for a
// display and returns a complete [Artifact] or an error, never a partial
// one. Artifacts are built fresh on every call and are not cached.
//
// Unlike the synthesizers, which accept any non-negative seed, the gallery
// only accepts display ids in [1, MaxDisplay].
package gallery
