// Package manifest loads a catalog and its resource bundle from a YAML file.
//
// A manifest supplies the catalog content that the built-in data set
// otherwise provides: a string table, an image table and the ordered item
// list that references both.
//
//	version: 1
//	strings:
//	  title_friends: "Friends"
//	images:
//	  friends: "images/friends.png"
//	items:
//	  - title: title_friends
//	    image: friends
//
// Image paths are resolved relative to the manifest's directory. Every image
// is decoded during Load; a manifest that loads successfully never needs the
// filesystem again.
//
// Validation failures are reported as *Error values whose Kind tells the
// caller which part of the manifest was wrong.
package manifest
