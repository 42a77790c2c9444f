package util

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
)

func initCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := LoadEnvFor("CLOUDINARY_API_SECRET")
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return &cloudinary.Cloudinary{}, err
	}

	return cld, nil
}

// ImageUploadHelper pushes a file or remote url to the configured
// cloudinary folder and returns the upload result.
func ImageUploadHelper(input interface{}) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := initCloudinary()
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadFolder := LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER")
	uploadRes, err := cld.Upload.Upload(ctx, input, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return *uploadRes, nil
}

// DestroyMedia removes a previously uploaded asset by its public id.
// Used to clean up orphaned product images when a create fails mid-way.
func DestroyMedia(publicID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := initCloudinary()
	if err != nil {
		return "", err
	}

	deleteResult, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return "", err
	}

	return deleteResult.Result, nil
}
