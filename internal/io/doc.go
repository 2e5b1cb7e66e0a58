// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	err := ioutils.EnsureDir("/exports")
//	err = ioutils.WriteFile(ctx, "/exports/01 Dune.xml", data)
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Design Patterns: Elements") // "Design Patterns_ Elements"
//
// # Image Processing
//
// ImageService resizes and converts cover art before it is embedded in tags:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
