package forms

// Key names an entry of the error catalog.
type Key = string

const (
	KeyTitleMin       Key = "errors.title.min"
	KeyTitleMax       Key = "errors.title.max"
	KeyDescriptionMin Key = "errors.description.min"
	KeyDescriptionMax Key = "errors.description.max"
	KeyAuthorRequired Key = "errors.author.required"

	KeyFirstnameMin Key = "errors.firstname.min"
	KeyFirstnameMax Key = "errors.firstname.max"
	KeySurnameMin   Key = "errors.surname.min"
	KeySurnameMax   Key = "errors.surname.max"

	KeyNameMin      Key = "errors.name.min"
	KeyNameMax      Key = "errors.name.max"
	KeyBiographyMin Key = "errors.biography.min"
	KeyBiographyMax Key = "errors.biography.max"

	KeyCityMin         Key = "errors.city.min"
	KeyCityMax         Key = "errors.city.max"
	KeyCountryRequired Key = "errors.country.required"

	KeyImageFormat Key = "errors.image.format"
	KeyImageSize   Key = "errors.image.size"
)

// Keys lists every catalog entry. Each bundled locale defines all of them.
var Keys = []Key{
	KeyTitleMin, KeyTitleMax, KeyDescriptionMin, KeyDescriptionMax, KeyAuthorRequired,
	KeyFirstnameMin, KeyFirstnameMax, KeySurnameMin, KeySurnameMax,
	KeyNameMin, KeyNameMax, KeyBiographyMin, KeyBiographyMax,
	KeyCityMin, KeyCityMax, KeyCountryRequired,
	KeyImageFormat, KeyImageSize,
}

// Field names used as slot keys.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAuthorID    = "authorId"
	FieldFirstname   = "firstname"
	FieldLastname    = "lastname"
	FieldName        = "name"
	FieldBiography   = "biography"
	FieldCity        = "city"
	FieldCountryID   = "countryId"
)

// Length bounds, in UTF-16 code units.
const (
	ShortTextMin = 3
	ShortTextMax = 255
	LongTextMin  = 10
	LongTextMax  = 2000
)

// Image constraints.
const (
	MaxImageSize int64 = 15 * 1024 * 1024
)

// AllowedImageTypes lists the accepted image MIME types.
var AllowedImageTypes = []string{"image/png", "image/jpeg", "image/jpg"}
