// Package spec implements the boot file specification resolver.
//
// A specification is a whitespace-separated list of entries. Each entry is
// a glob pattern relative to the artifact root, optionally followed by a
// semicolon and an explicit destination:
//
//	bzImage                    copy, keeping the relative path
//	u-boot.img;uboot           copy under an exact new name
//	*.dtb;dtbs/                copy all matches into a directory
//	boot/grub/*.cfg            nested patterns preserve their layout
//
// Resolution turns a specification into an ordered list of
// (source, destination) pairs. Entry order is preserved, and matches for a
// single entry are sorted lexicographically, so the result is deterministic
// regardless of directory listing order.
package spec
