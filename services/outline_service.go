package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/mastaskillz/course_studio/authoring"
	config "github.com/mastaskillz/course_studio/configs"
	"github.com/mastaskillz/course_studio/database"
	"github.com/mastaskillz/course_studio/models"
)

// GenerateCourseOutline renders a printable outline PDF for a freshly
// published course, uploads it and stores the URL on the course record.
// Runs in the background; failures are logged, never surfaced to the
// publish request.
func GenerateCourseOutline(course authoring.Course) {
	htmlData, err := renderOutlineHTML(course)
	if err != nil {
		log.Printf("🔥 Failed to render outline HTML for course %s: %v", course.ID, err)
		return
	}

	pdfBytes, err := printPDF(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate outline PDF for course %s: %v", course.ID, err)
		return
	}

	outlineURL, err := uploadOutline(pdfBytes, course.ID)
	if err != nil {
		log.Printf("🔥 Failed to upload outline for course %s: %v", course.ID, err)
		return
	}

	err = database.DB.Model(&models.Course{}).
		Where("id = ?", course.ID).
		Update("outline_url", outlineURL).Error
	if err != nil {
		log.Printf("🔥 Failed to store outline URL for course %s: %v", course.ID, err)
		return
	}
	log.Printf("✅ Generated outline for course %q (%s)", course.Title, course.ID)
}

func renderOutlineHTML(course authoring.Course) (string, error) {
	tmpl, err := template.New("outline.html").
		Funcs(template.FuncMap{"addOne": func(i int) int { return i + 1 }}).
		ParseFiles("templates/outline.html")
	if err != nil {
		return "", err
	}

	data := struct {
		Course       authoring.Course
		PricingLabel string
		PublishedOn  string
		TotalLessons int
		TotalQuizzes int
	}{
		Course:       course,
		PricingLabel: authoring.PricingLabel(course.Pricing),
		PublishedOn:  time.Now().Format("January 2, 2006"),
		TotalLessons: course.TotalLessons(),
		TotalQuizzes: course.TotalQuizzes(),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func printPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadOutline(fileBytes []byte, courseID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("outlines/%s_%s", courseID, uuid.New().String()),
		Folder:       "course_studio_outlines",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
