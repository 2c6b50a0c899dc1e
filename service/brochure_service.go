package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"gcwab-store/models"
	"gcwab-store/repository"
	"gcwab-store/utils"
)

// BrochureService renders the showroom's vehicle listings into a printable
// PDF brochure using headless Chrome
type BrochureService struct {
	vehicles repository.VehicleRepositoryInterface
	baseURL  string // Base URL of this server, e.g. "http://localhost:8080"
}

// NewBrochureService creates a new BrochureService
func NewBrochureService(vehicles repository.VehicleRepositoryInterface, baseURL string) *BrochureService {
	return &BrochureService{
		vehicles: vehicles,
		baseURL:  baseURL,
	}
}

// Ensure BrochureService implements BrochureServiceInterface
var _ BrochureServiceInterface = (*BrochureService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// brochureVehicle is a vehicle prepared for template rendering
type brochureVehicle struct {
	models.Vehicle
	PriceFormatted string
	ImageDataURI   template.URL
}

const brochureTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	@page { size: A4; margin: 12mm; }
	body { font-family: Helvetica, Arial, sans-serif; color: #111; }
	h1 { text-align: center; letter-spacing: 2px; text-transform: uppercase; }
	.vehicle { page-break-inside: avoid; border-bottom: 1px solid #ddd; padding: 16px 0; display: flex; gap: 16px; }
	.vehicle img { width: 240px; height: 160px; object-fit: cover; border-radius: 8px; }
	.vehicle h2 { margin: 0 0 4px 0; }
	.price { color: #b8860b; font-size: 1.2em; font-weight: bold; }
	.meta { color: #555; font-size: 0.9em; }
	.specs { font-size: 0.85em; color: #333; }
</style>
</head>
<body>
	<h1>Showroom Collection</h1>
	<p class="meta">Generated {{.GeneratedAt}} · {{len .Vehicles}} vehicles</p>
	{{range .Vehicles}}
	<div class="vehicle">
		{{if .ImageDataURI}}<img src="{{.ImageDataURI}}" alt="{{.Name}}">{{end}}
		<div>
			<h2>{{.Name}} {{.Model}} <span class="meta">{{.Year}}</span></h2>
			<div class="price">{{.PriceFormatted}}</div>
			<div class="meta">{{.Condition}} · {{.Transmission}} · {{.Engine}} {{.Trim}}</div>
			<div class="meta">Exterior: {{.Exterior}} · Interior: {{.Interior}} · Papers: {{.Papers}}</div>
			<div class="specs">{{range $i, $s := .Specs}}{{if $i}} · {{end}}{{$s}}{{end}}</div>
		</div>
	</div>
	{{end}}
</body>
</html>`

// fetchImageAsBase64 fetches an image and converts it to a data URI
func (s *BrochureService) fetchImageAsBase64(imageURL string) (string, error) {
	// Listing images are absolute URLs; media-cache paths are relative to us
	fullURL := imageURL
	if len(imageURL) > 0 && imageURL[0] == '/' {
		fullURL = s.baseURL + imageURL
	}

	resp, err := http.Get(fullURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(imageData)), nil
}

// RenderBrochureHTML renders the brochure HTML with vehicle images inlined as
// base64 so the print pass needs no further network round trips
func (s *BrochureService) RenderBrochureHTML(ctx context.Context) (string, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list vehicles: %w", err)
	}

	prepared := make([]brochureVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		bv := brochureVehicle{
			Vehicle:        v,
			PriceFormatted: utils.FormatNaira(v.Price),
		}
		if len(v.Images) > 0 {
			dataURI, err := s.fetchImageAsBase64(v.Images[0])
			if err != nil {
				log.Printf("⚠️  Warning: Failed to fetch image for vehicle %d: %v", v.ID, err)
			} else {
				bv.ImageDataURI = template.URL(dataURI)
			}
		}
		prepared = append(prepared, bv)
	}

	tmpl, err := template.New("brochure").Parse(brochureTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse brochure template: %w", err)
	}

	templateData := struct {
		GeneratedAt string
		Vehicles    []brochureVehicle
	}{
		GeneratedAt: time.Now().Format("2 January 2006"),
		Vehicles:    prepared,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute brochure template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF prints the brochure render endpoint to PDF using chromedp
func (s *BrochureService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/vehicles/brochure/render", s.baseURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print brochure to PDF: %w", err)
	}

	log.Printf("✅ GeneratePDF: Brochure generated, %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
