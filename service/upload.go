package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"prontoshop/config"
	"prontoshop/pkg/snowflake"
	"prontoshop/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResponse, error)
}

// UploadService 商品图片上传，对象存储直传
type UploadService struct {
	Client     *oss.Client
	BucketName string
	PublicHost string
}

func NewUploadService(cfg *config.OssConfig) IUploadService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &UploadService{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		PublicHost: cfg.PublicHost,
	}
}

func (s *UploadService) UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResponse, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	_, _ = seeker.Seek(0, io.SeekStart)

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("products/%s/%d%s",
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	return &types.UploadImageResponse{
		Url:    strings.TrimSuffix(s.PublicHost, "/") + "/" + objectKey,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
