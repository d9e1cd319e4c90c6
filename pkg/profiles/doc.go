// Package profiles resolves named password-generation presets from a
// YAML file, so frequently used constraint combinations get a short name
// on the command line.
//
// File format:
//
//	profiles:
//	  pin:
//	    length: 6
//	    digits: true
//	  strong:
//	    length: 24
//	    uppercase: true
//	    lowercase: true
//	    digits: true
//	    special: true
//
// A built-in "default" profile (12 characters, all classes) is always
// present and can be overridden by the file.
package profiles
