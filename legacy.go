package tagbridge

// Path-addressed variants of the handle operations, kept for callers that
// perform a single operation per file and don't want to manage handles.
// Each opens a handle, runs the operation, and closes the handle again;
// semantics are otherwise identical to the handle-addressed forms.

// ReadTagsPath reads the normalized metadata rows of the file at path.
func (r *Registry) ReadTagsPath(path string, opts ...Option) (Rows, error) {
	h, _, err := r.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close(h)
	return r.ReadTags(h)
}

// ReadRawTagsPath reads the format-native rows of the file at path.
func (r *Registry) ReadRawTagsPath(path string, opts ...Option) (Rows, error) {
	h, _, err := r.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close(h)
	return r.ReadRawTags(h)
}

// ReadID3v1TagsPath reads the legacy ID3v1 trailer of the file at path.
func (r *Registry) ReadID3v1TagsPath(path string, opts ...Option) (Rows, error) {
	h, _, err := r.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close(h)
	return r.ReadID3v1Tags(h)
}

// ReadAllTagsPath reads every tag view of the file at path in one call.
func (r *Registry) ReadAllTagsPath(path string, opts ...Option) (AllTags, error) {
	h, _, err := r.Open(path, opts...)
	if err != nil {
		return AllTags{}, err
	}
	defer r.Close(h)
	return r.ReadAllTags(h)
}

// ReadPropertiesPath reads the technical snapshot of the file at path.
func (r *Registry) ReadPropertiesPath(path string, opts ...Option) (*FileProperties, error) {
	h, _, err := r.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close(h)
	return r.ReadProperties(h)
}

// ReadImagePath reads the embedded picture at index from the file at path.
func (r *Registry) ReadImagePath(path string, index int, opts ...Option) ([]byte, error) {
	h, _, err := r.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close(h)
	return r.ReadImage(h, index)
}

// WriteTagsPath applies rows to the normalized bag of the file at path.
func (r *Registry) WriteTagsPath(path string, rows Rows, opts WriteOption) error {
	h, _, err := r.Open(path)
	if err != nil {
		return err
	}
	defer r.Close(h)
	return r.WriteTags(h, rows, opts)
}

// WriteRawTagsPath applies rows to the native tag of the file at path.
func (r *Registry) WriteRawTagsPath(path string, rows Rows, opts WriteOption) error {
	h, _, err := r.Open(path)
	if err != nil {
		return err
	}
	defer r.Close(h)
	return r.WriteRawTags(h, rows, opts)
}

// WriteImagePath writes, replaces or deletes a picture in the file at path.
func (r *Registry) WriteImagePath(path string, data []byte, index int, picType, description, mimeType string) error {
	h, _, err := r.Open(path)
	if err != nil {
		return err
	}
	defer r.Close(h)
	return r.WriteImage(h, data, index, picType, description, mimeType)
}
