package pageable

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/rococo-gallery/forms/pkg/validator"
)

// Defaults match the gateway's defaults for list endpoints.
const (
	DefaultSize = 10
	MaxSize     = 100
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort orders a page by one or more columns.
type Sort struct {
	Columns   []string  `json:"columns,omitempty"`
	Direction Direction `json:"direction,omitempty" validate:"omitempty,oneof=ASC DESC"`
}

// String renders the sort the way the gateway expects it:
// columns followed by the direction, comma separated. Blank parts are skipped.
func (s Sort) String() string {
	parts := lo.Filter(append(append([]string{}, s.Columns...), string(s.Direction)),
		func(p string, _ int) bool { return strings.TrimSpace(p) != "" },
	)
	return strings.Join(parts, ",")
}

// Request describes which page to fetch.
type Request struct {
	Page int  `json:"page" validate:"gte=0"`
	Size int  `json:"size" validate:"gte=1,lte=100"`
	Sort Sort `json:"sort"`
}

// NewRequest returns the first page with the default size.
func NewRequest() Request {
	return Request{Page: 0, Size: DefaultSize}
}

var (
	validateOnce sync.Once
	validate     *playground.Validate
)

func structValidator() *playground.Validate {
	validateOnce.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks page bounds and sort direction. Failures are reported as
// validator.ValidationErrors joined with ErrInvalidRequest.
func (r Request) Validate() error {
	err := structValidator().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidRequest, err)
	}

	verrs := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		verrs.Add(validator.ValidationError{
			Field:          fe.Field(),
			Message:        fe.Error(),
			TranslationKey: "validation." + fe.Tag(),
			TranslationValues: map[string]any{
				"field": fe.Field(),
				"param": fe.Param(),
			},
		})
	}
	return errors.Join(ErrInvalidRequest, verrs)
}

// Query encodes the request as query parameters: page, size and, when not
// blank, sort.
func (r Request) Query() url.Values {
	q := url.Values{
		"page": {strconv.Itoa(r.Page)},
		"size": {strconv.Itoa(r.Size)},
	}
	if s := r.Sort.String(); s != "" {
		q["sort"] = []string{s}
	}
	return q
}

// ParseQuery is the inverse of Query. Missing values take defaults; a trailing
// ASC or DESC token in sort (any case) is read as the direction.
func ParseQuery(q url.Values) (Request, error) {
	r := NewRequest()

	get := func(key string) string {
		return strings.TrimSpace(q.Get(key))
	}

	if v := get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, errors.Join(ErrInvalidRequest, err)
		}
		r.Page = n
	}
	if v := get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, errors.Join(ErrInvalidRequest, err)
		}
		r.Size = n
	}
	if v := get("sort"); v != "" {
		parts := lo.FilterMap(strings.Split(v, ","), func(p string, _ int) (string, bool) {
			p = strings.TrimSpace(p)
			return p, p != ""
		})
		if n := len(parts); n > 0 {
			switch d := Direction(strings.ToUpper(parts[n-1])); d {
			case Asc, Desc:
				r.Sort.Direction = d
				parts = parts[:n-1]
			}
		}
		if len(parts) > 0 {
			r.Sort.Columns = parts
		}
	}

	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return r, nil
}
