package browser

import (
	"cataractcare-service/internal/app/config"
	"context"
	"log"

	"github.com/chromedp/chromedp"
)

// NewChromeAllocator prepares a headless Chrome allocator. Browser processes
// are started lazily by the first chromedp.Run on a derived context; the
// returned cancel func stops them.
func NewChromeAllocator(driverConfig *config.DriverConfig) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", driverConfig.Chrome.NoSandbox),
	)
	if driverConfig.Chrome.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(driverConfig.Chrome.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	log.Println("Successfully prepared headless chrome allocator")
	return allocCtx, cancel
}
