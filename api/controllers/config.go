package controllers

import (
	"net/http"

	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/pkg/config"
)

type clientConfigResponse struct {
	StorageBaseURL string              `json:"storageBaseUrl"`
	Buckets        clientConfigBuckets `json:"buckets"`
}

type clientConfigBuckets struct {
	ProductImage string `json:"productImage"`
	Items        string `json:"items"`
}

// ClientConfig exposes the storage endpoints the frontend needs to render
// image and attachment URLs.
func ClientConfig(cfg config.StorageConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, clientConfigResponse{
			StorageBaseURL: cfg.BaseURL,
			Buckets: clientConfigBuckets{
				ProductImage: cfg.ProductImageBucket,
				Items:        cfg.ItemsBucket,
			},
		})
	}
}
