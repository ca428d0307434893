// Package catalog checks whole book entries before they are stored: the
// title must be acceptable, the page range must be countable, the bookmark
// must be a page number, the description is made safe for HTML and a URL
// slug is derived from the title.
//
//	checker, err := catalog.NewFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//
//	rec, err := checker.Check(ctx, catalog.Entry{
//	    Title:       "The Left Hand of Darkness",
//	    Pages:       "1-3, 5-6, p9",
//	    Bookmark:    "p5",
//	    Description: "<b>Winter</b> on Gethen",
//	})
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // report per-field problems
//	}
//
// Configuration is read from the environment with LoadConfig; see Config for
// the variables and their defaults. Checker is safe for concurrent use.
package catalog
