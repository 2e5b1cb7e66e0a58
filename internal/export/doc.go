// Package export writes rendered catalogs to disk.
//
// # Manager
//
// The Manager renders every catalog item through every configured format
// and writes one file per item and format:
//
//	/exports/01 Design Patterns_ Elements of Reusable Object-Oriented Software.xml
//	/exports/01 Design Patterns_ Elements of Reusable Object-Oriented Software.json
//	/exports/02 Complete Clapton.xml
//	/exports/02 Complete Clapton.json
//
// # Basic Usage
//
//	manager, err := export.NewManager(settings, func(event export.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    return err
//	}
//	err = manager.Export(ctx, catalog)
//
// # Concurrency
//
// Items are exported in parallel, at most settings.MaxConcurrentExports at
// a time. A failing item is reported and does not stop the others.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package export
