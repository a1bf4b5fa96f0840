package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"sort"
)

// FileUpload is one pending file selection: the original filename and its
// content.
type FileUpload struct {
	Name    string
	Content []byte
}

// EmployeeUpload is the multipart payload for employee create and update
// calls. Scalars holds every non-empty form field; the file slots are only
// sent when the user selected new files, existing server-side attachments
// are never re-submitted.
type EmployeeUpload struct {
	Scalars    map[string]string
	Photo      *FileUpload
	Documents  []FileUpload
	Identities []FileUpload
}

// encodeMultipart renders the upload as multipart form data. Scalar fields
// are written in sorted order so the encoding is deterministic; document and
// identity files use the backend's repeated `documents[]`/`identities[]`
// field convention.
func encodeMultipart(upload EmployeeUpload) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	keys := make([]string, 0, len(upload.Scalars))
	for key := range upload.Scalars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := writer.WriteField(key, upload.Scalars[key]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", key, err)
		}
	}

	if upload.Photo != nil {
		if err := writeFile(writer, "photo", *upload.Photo); err != nil {
			return nil, "", err
		}
	}

	for _, doc := range upload.Documents {
		if err := writeFile(writer, "documents[]", doc); err != nil {
			return nil, "", err
		}
	}

	for _, identity := range upload.Identities {
		if err := writeFile(writer, "identities[]", identity); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

func writeFile(writer *multipart.Writer, field string, file FileUpload) error {
	part, err := writer.CreateFormFile(field, file.Name)
	if err != nil {
		return fmt.Errorf("failed to create form file %q: %w", field, err)
	}

	if _, err = part.Write(file.Content); err != nil {
		return fmt.Errorf("failed to write file %q: %w", file.Name, err)
	}

	return nil
}
