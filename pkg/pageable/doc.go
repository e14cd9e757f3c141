// Package pageable models paged responses of the rococo gateway and the
// parameters used to request them.
//
// The gateway currently answers list endpoints with
//
//	{"content": [...], "page": {"number": 0, "size": 10, "totalElements": 42, "totalPages": 5}}
//
// Older deployments emit the flat Spring Data envelope (top-level totalPages,
// totalElements, number, size, first, last, a nested "pageable" object, ...).
// Decode accepts both and always returns Page[T]:
//
//	page, err := pageable.Decode[[]PaintingDTO](body)
//
// No invariants are enforced on decoded metadata; values are taken as sent.
//
// Request builds and validates the query side (page, size, sort):
//
//	req := pageable.NewRequest()
//	req.Sort = pageable.Sort{Columns: []string{"title"}, Direction: pageable.Desc}
//	if err := req.Validate(); err != nil {
//		return err
//	}
//	u.RawQuery = req.Query().Encode() // page=0&size=10&sort=title%2CDESC
package pageable
