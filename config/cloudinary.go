package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const CloudinaryFolder = "village-platform"

var (
	cld     *cloudinary.Cloudinary
	cldErr  error
	cldOnce sync.Once
)

// Cloudinary returns the shared Cloudinary client, configured from
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	cldOnce.Do(func() {
		cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
		apiKey := os.Getenv("CLOUDINARY_API_KEY")
		apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
		if cloudName == "" || apiKey == "" || apiSecret == "" {
			cldErr = fmt.Errorf("cloudinary credentials are not configured")
			return
		}
		cld, cldErr = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	})
	return cld, cldErr
}

// UploadImage stores the file in the village-platform folder and returns
// the delivery URL.
func UploadImage(ctx context.Context, file io.Reader, publicID string) (string, error) {
	c, err := Cloudinary()
	if err != nil {
		return "", err
	}

	resp, err := c.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   CloudinaryFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// DestroyImage removes a previously uploaded asset by its public ID.
func DestroyImage(ctx context.Context, publicID string) error {
	c, err := Cloudinary()
	if err != nil {
		return err
	}

	_, err = c.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
