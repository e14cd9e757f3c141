package forms

import (
	"errors"
	"log/slog"

	"github.com/rococo-gallery/forms/pkg/file"
	"github.com/rococo-gallery/forms/pkg/logger"
	"github.com/rococo-gallery/forms/pkg/store"
)

// Form names, used as store names and log attributes.
const (
	FormPainting = "painting"
	FormUser     = "user"
	FormArtist   = "artist"
	FormMuseum   = "museum"
)

// Forms owns one error slot store per form and merges validation results into them.
type Forms struct {
	catalog *Catalog
	logger  *slog.Logger

	Painting *store.Store[Slots]
	User     *store.Store[Slots]
	Artist   *store.Store[Slots]
	Museum   *store.Store[Slots]
}

// Option configures Forms.
type Option func(*Forms)

// WithLogger sets the logger used by Forms and its stores.
func WithLogger(l *slog.Logger) Option {
	return func(f *Forms) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates the form stores, each starting with every field valid.
func New(catalog *Catalog, opts ...Option) (*Forms, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	f := &Forms{
		catalog: catalog,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	newStore := func(name string, fields ...string) *store.Store[Slots] {
		return store.New(newSlots(fields...), store.WithName(name), store.WithLogger(f.logger))
	}
	f.Painting = newStore(FormPainting, FieldTitle, FieldDescription, FieldAuthorID)
	f.User = newStore(FormUser, FieldFirstname, FieldLastname)
	f.Artist = newStore(FormArtist, FieldName, FieldBiography)
	f.Museum = newStore(FormMuseum, FieldTitle, FieldDescription, FieldCity, FieldCountryID)

	return f, nil
}

// Catalog returns the catalog messages are rendered from.
func (f *Forms) Catalog() *Catalog {
	return f.catalog
}

// ValidatePainting validates the painting form and merges the result into the painting store.
// Returns the updated slot set.
func (f *Forms) ValidatePainting(in PaintingInput) Slots {
	return f.merge(f.Painting, f.catalog.PaintingErrors(in))
}

// ValidateUser validates the profile form and merges the result into the user store.
func (f *Forms) ValidateUser(in UserInput) Slots {
	return f.merge(f.User, f.catalog.UserErrors(in))
}

// ValidateArtist validates the artist form and merges the result into the artist store.
func (f *Forms) ValidateArtist(in ArtistInput) Slots {
	return f.merge(f.Artist, f.catalog.ArtistErrors(in))
}

// ValidateMuseum validates the museum form and merges the result into the museum store.
func (f *Forms) ValidateMuseum(in MuseumInput) Slots {
	return f.merge(f.Museum, f.catalog.MuseumErrors(in))
}

// ValidateImage returns the image message. It does not touch any store.
func (f *Forms) ValidateImage(img file.Meta) string {
	msg := f.catalog.ImageError(img)
	if msg != "" {
		f.logger.Debug("image rejected",
			slog.String("mime_type", img.MIMEType),
			slog.Int64("size", img.Size),
		)
	}
	return msg
}

func (f *Forms) merge(s *store.Store[Slots], fragment Slots) Slots {
	next := s.Update(func(prev Slots) Slots {
		return prev.merge(fragment)
	})

	f.logger.Debug("form validated",
		logger.Form(s.Name()),
		logger.Fields(fragment.Fields()),
	)
	return next
}

// Close closes every form store, ending their subscriptions.
func (f *Forms) Close() error {
	return errors.Join(
		f.Painting.Close(),
		f.User.Close(),
		f.Artist.Close(),
		f.Museum.Close(),
	)
}
