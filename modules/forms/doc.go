// Package forms validates the rococo gallery forms.
//
// Each validator classifies raw field values against fixed length, presence,
// format and size constraints and renders the violations through an error
// catalog loaded from YAML locales. Results are kept per form in
// store.Store[Slots]: a validation call merges its fragment over the previous
// slot set, so fields it does not cover keep their messages, and subscribers
// are notified of the new set.
//
// Inputs are optional strings. An absent value fails the minimum length of a
// text field and the presence check of a reference field.
//
// Example:
//
//	catalog, err := forms.NewCatalog(ctx, forms.WithLanguage("ru"))
//	if err != nil {
//		return err
//	}
//	f, err := forms.New(catalog, forms.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	slots := f.ValidatePainting(forms.PaintingInput{Title: &title, AuthorID: &authorID})
//	if !slots.Valid() {
//		// render slots[forms.FieldTitle] and friends
//	}
package forms
