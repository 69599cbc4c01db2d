package handlers

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	"github.com/mastaskillz/course_studio/authoring"
	config "github.com/mastaskillz/course_studio/configs"
	"github.com/mastaskillz/course_studio/middleware"
	"github.com/mastaskillz/course_studio/utils"
	"github.com/mastaskillz/course_studio/websocket"
)

const maxVideoSize = 200 * 1024 * 1024 // 200MB

var allowedVideoTypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
}

// GenerateUploadSignature creates a secure signature for a frontend upload.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: "course_studio_videos",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    "course_studio_videos",
	})
}

// progressReader reports fractional read progress to the websocket hub as
// the upload streams to Cloudinary.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	event websocket.ProgressEvent
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.read += int64(n)
	if p.total > 0 {
		event := p.event
		event.Percent = float64(p.read) / float64(p.total) * 100
		websocket.SendProgress(event)
	}
	return n, err
}

// UploadLessonVideo streams a video to Cloudinary and returns the content
// descriptor for the lesson. The module and lesson ids ride along so the
// client can retry a failed upload without losing other edits.
func UploadLessonVideo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}
	moduleID := c.FormValue("module_id")
	lessonID := c.FormValue("lesson_id")

	fileType := fileHeader.Header.Get("Content-Type")
	if !allowedVideoTypes[fileType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "Invalid file type. Please upload MP4, WebM, or OGG video",
			"module_id": moduleID,
			"lesson_id": lessonID,
		})
	}
	if fileHeader.Size > maxVideoSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "Video size exceeds 200MB limit",
			"module_id": moduleID,
			"lesson_id": lessonID,
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read file"})
	}
	defer file.Close()

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	event := websocket.ProgressEvent{
		UserID:   middleware.UserID(c),
		ModuleID: moduleID,
		LessonID: lessonID,
		FileName: fileHeader.Filename,
	}
	reader := &progressReader{r: file, total: fileHeader.Size, event: event}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Minute)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:       "course_studio_videos",
		PublicID:     utils.NewContentID("video"),
		ResourceType: "video",
	})
	if err != nil {
		event.Error = "Upload failed"
		websocket.SendProgress(event)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":     "Failed to upload video",
			"module_id": moduleID,
			"lesson_id": lessonID,
		})
	}

	event.Percent = 100
	event.Done = true
	websocket.SendProgress(event)

	return c.JSON(authoring.ContentDescriptor{
		URL:      result.SecureURL,
		FileName: fileHeader.Filename,
		FileSize: fileHeader.Size,
		FileType: fileType,
		Width:    result.Width,
		Height:   result.Height,
	})
}
