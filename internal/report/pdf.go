package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const pdfTimeout = time.Minute

// GeneratePDF prints a rendered HTML report to PDF with headless Chrome and
// writes it next to the HTML file. Requires a Chrome/Chromium binary on the
// host; callers treat failure as non-fatal.
func GeneratePDF(ctx context.Context, htmlPath string) (string, error) {
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, pdfTimeout)
	defer timeoutCancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+absPath),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return "", fmt.Errorf("print to pdf: %w", err)
	}

	pdfPath := strings.TrimSuffix(htmlPath, ".html") + ".pdf"
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return pdfPath, nil
}
