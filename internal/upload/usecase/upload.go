package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/upload"
	"smart-todo/pkg/storage"
)

// Upload stores the file under <user>/<unix-ms>_<name> and returns its public URL.
func (uc *implUseCase) Upload(ctx context.Context, sc model.Scope, input upload.Input) (upload.Output, error) {
	if input.Body == nil || input.Size == 0 {
		return upload.Output{}, upload.ErrEmptyFile
	}
	if uc.maxBytes > 0 && input.Size > uc.maxBytes {
		return upload.Output{}, upload.ErrFileTooLarge
	}

	bucket, err := uc.bucket(input.Kind)
	if err != nil {
		return upload.Output{}, err
	}
	if !acceptsContentType(input.Kind, input.ContentType) {
		return upload.Output{}, upload.ErrUnsupportedType
	}

	name := sanitizeFilename(input.Filename)
	if input.Kind == upload.KindVoiceNote {
		name = upload.VoiceNoteFilename
	}
	key := fmt.Sprintf("%s/%d_%s", sc.UserID, uc.now().UnixMilli(), name)

	url, err := uc.storage.Put(ctx, storage.PutInput{
		Bucket:      bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "upload.usecase.Upload.storage.Put: %v", err)
		return upload.Output{}, err
	}

	uc.metrics.ObserveUpload(input.Kind.Label(), input.Size)
	uc.l.Infof(ctx, "upload.usecase.Upload: user=%s bucket=%s key=%s size=%d", sc.UserID, bucket, key, input.Size)
	return upload.Output{URL: url, Bucket: bucket, Key: key}, nil
}

// Remove deletes an object under the caller's prefix.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, input upload.RemoveInput) error {
	bucket, err := uc.bucket(input.Kind)
	if err != nil {
		return err
	}

	key := strings.TrimPrefix(input.Key, "/")
	if path.Clean(key) != key || !strings.HasPrefix(key, sc.UserID+"/") {
		return upload.ErrForbidden
	}

	if err := uc.storage.Delete(ctx, bucket, key); err != nil {
		uc.l.Errorf(ctx, "upload.usecase.Remove.storage.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) bucket(kind upload.Kind) (string, error) {
	switch kind {
	case upload.KindImage:
		return uc.imageBucket, nil
	case upload.KindVoiceNote:
		return uc.voiceBucket, nil
	}
	return "", upload.ErrInvalidKind
}

func acceptsContentType(kind upload.Kind, contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch kind {
	case upload.KindImage:
		return strings.HasPrefix(ct, "image/")
	case upload.KindVoiceNote:
		return strings.HasPrefix(ct, "audio/") || ct == "video/webm" || ct == "application/octet-stream"
	}
	return false
}

// sanitizeFilename keeps the base name and replaces characters that are
// awkward in object keys.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
