package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"shivamroadways/models"
)

// PDF rasterizes the two-copy document into a portrait A4 PDF through
// headless Chrome. The temporary HTML render target is always released, even
// when printing fails. A missing booking yields nil bytes and nil error.
func (r *Renderer) PDF(ctx context.Context, data *models.SlipData) ([]byte, error) {
	body, err := r.copies(data)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, nil
	}

	finalHTML := wrapDocument(body, false)

	tmpHTML := filepath.Join(os.TempDir(), "slip_"+time.Now().Format("20060102150405.000")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(cctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
