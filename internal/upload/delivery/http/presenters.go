package http

import "smart-todo/internal/upload"

type uploadResp struct {
	URL    string `json:"url"`
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

func (h *handler) newUploadResp(o upload.Output) uploadResp {
	return uploadResp{URL: o.URL, Bucket: o.Bucket, Key: o.Key}
}

type removeResp struct {
	Deleted bool `json:"deleted"`
}
