// Package file extracts the metadata image validation needs (MIME type and
// size) from uploads and files on disk.
//
// MIME types are detected from content with http.DetectContentType, which reads
// at most 512 bytes, instead of trusting extensions or client headers.
//
//	meta, err := file.FromHeader(r.MultipartForm.File["image"][0])
//	if err != nil {
//		return err
//	}
//	msg := f.ValidateImage(meta)
package file
