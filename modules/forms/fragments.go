package forms

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rococo-gallery/forms/pkg/file"
	"github.com/rococo-gallery/forms/pkg/validator"
)

// PaintingInput holds painting form values. nil means the field was not provided.
type PaintingInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AuthorID    *string `json:"authorId"`
}

// UserInput holds profile form values.
type UserInput struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
}

// ArtistInput holds artist form values.
type ArtistInput struct {
	Name      *string `json:"name"`
	Biography *string `json:"biography"`
}

// MuseumInput holds museum form values.
type MuseumInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	City        *string `json:"city"`
	CountryID   *string `json:"countryId"`
}

func (c *Catalog) shortText(field string, value *string, minKey, maxKey Key) string {
	return c.check(
		validator.MinLen(field, value, ShortTextMin).WithKey(minKey),
		validator.MaxLen(field, value, ShortTextMax).WithKey(maxKey),
	)
}

func (c *Catalog) longText(field string, value *string, minKey, maxKey Key) string {
	return c.check(
		validator.MinLen(field, value, LongTextMin).WithKey(minKey),
		validator.MaxLen(field, value, LongTextMax).WithKey(maxKey),
	)
}

// PaintingErrors computes the painting form fragment without touching any store.
func (c *Catalog) PaintingErrors(in PaintingInput) Slots {
	return Slots{
		FieldTitle:       c.shortText(FieldTitle, in.Title, KeyTitleMin, KeyTitleMax),
		FieldDescription: c.longText(FieldDescription, in.Description, KeyDescriptionMin, KeyDescriptionMax),
		FieldAuthorID:    c.check(validator.Present(FieldAuthorID, in.AuthorID).WithKey(KeyAuthorRequired)),
	}
}

// UserErrors computes the profile form fragment.
func (c *Catalog) UserErrors(in UserInput) Slots {
	return Slots{
		FieldFirstname: c.shortText(FieldFirstname, in.Firstname, KeyFirstnameMin, KeyFirstnameMax),
		FieldLastname:  c.shortText(FieldLastname, in.Lastname, KeySurnameMin, KeySurnameMax),
	}
}

// ArtistErrors computes the artist form fragment.
func (c *Catalog) ArtistErrors(in ArtistInput) Slots {
	return Slots{
		FieldName:      c.shortText(FieldName, in.Name, KeyNameMin, KeyNameMax),
		FieldBiography: c.longText(FieldBiography, in.Biography, KeyBiographyMin, KeyBiographyMax),
	}
}

// MuseumErrors computes the museum form fragment.
func (c *Catalog) MuseumErrors(in MuseumInput) Slots {
	return Slots{
		FieldTitle:       c.shortText(FieldTitle, in.Title, KeyTitleMin, KeyTitleMax),
		FieldDescription: c.longText(FieldDescription, in.Description, KeyDescriptionMin, KeyDescriptionMax),
		FieldCity:        c.shortText(FieldCity, in.City, KeyCityMin, KeyCityMax),
		FieldCountryID:   c.check(validator.Present(FieldCountryID, in.CountryID).WithKey(KeyCountryRequired)),
	}
}

// ImageError checks the image format and size. Both messages are reported,
// format first, joined by ". ". Returns "" for an acceptable image.
func (c *Catalog) ImageError(img file.Meta) string {
	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.AllowedMIMEType("image", img.MIMEType, AllowedImageTypes...).WithKey(KeyImageFormat),
		validator.MaxFileSize("image", img.Size, MaxImageSize).WithKey(KeyImageSize),
	))
	return strings.Join(lo.Map(verrs, func(verr validator.ValidationError, _ int) string {
		return c.render(verr)
	}), ". ")
}
