package view

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catboard/internal/filex"
	"github.com/dmitrijs2005/catboard/internal/models"
)

// FetchRandomCat makes a single attempt. A failure leaves CatURL as it was.
func (c *Controller) FetchRandomCat(ctx context.Context) (string, error) {
	url, err := c.cats.FetchRandom(ctx)
	if err != nil {
		return "", c.fail(ctx, "fetch cat", err)
	}

	c.mu.Lock()
	c.state.CatURL = url
	c.mu.Unlock()
	return url, nil
}

// Register, Login and Logout leave the state alone; the session mirror
// follows the subscription.
func (c *Controller) Register(ctx context.Context, email, password string) error {
	if err := c.auth.CreateAccount(ctx, email, password); err != nil {
		return c.fail(ctx, "register", err)
	}
	return nil
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := c.auth.SignIn(ctx, email, password); err != nil {
		return c.fail(ctx, "login", err)
	}
	return nil
}

func (c *Controller) Logout(ctx context.Context) error {
	if err := c.auth.SignOut(ctx); err != nil {
		return c.fail(ctx, "logout", err)
	}
	return nil
}

// SelectFile remembers a local file for the next Upload.
func (c *Controller) SelectFile(path string) error {
	f, err := filex.Select(path)
	if err != nil {
		return c.fail(context.Background(), "select file", err)
	}

	c.mu.Lock()
	c.state.SelectedFile = f
	c.mu.Unlock()
	return nil
}

// Upload stores the selected file under <prefix><name><uuid>, resolves its
// URL and appends it to the image list. Without a selection it does nothing.
func (c *Controller) Upload(ctx context.Context) error {
	c.mu.RLock()
	f := c.state.SelectedFile
	c.mu.RUnlock()

	if f == nil {
		return nil
	}

	data, contentType, err := filex.Load(f)
	if err != nil {
		return c.fail(ctx, "upload", err)
	}

	key := c.blobPrefix + f.Name + newID()
	if err := c.blobs.Upload(ctx, key, data, contentType); err != nil {
		return c.fail(ctx, "upload", err)
	}

	url, err := c.blobs.PublicURL(ctx, key)
	if err != nil {
		return c.fail(ctx, "upload", err)
	}

	c.appendImages(models.UploadedImage{Key: key, URL: url})
	c.logger.Info(ctx, "file uploaded", "key", key)
	return nil
}

// Images returns the displayed image list.
func (c *Controller) Images() []models.UploadedImage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.UploadedImage(nil), c.state.Images...)
}

// loadImages enumerates the prefix once and appends every resolved URL.
// Keys that fail to resolve are noticed and skipped. Nothing is
// deduplicated against uploads made in the meantime.
func (c *Controller) loadImages(ctx context.Context) error {
	keys, err := c.blobs.List(ctx, c.blobPrefix)
	if err != nil {
		return c.fail(ctx, "list images", err)
	}

	images := make([]models.UploadedImage, 0, len(keys))
	for _, key := range keys {
		url, err := c.blobs.PublicURL(ctx, key)
		if err != nil {
			_ = c.fail(ctx, "resolve image", fmt.Errorf("%s: %w", key, err))
			continue
		}
		images = append(images, models.UploadedImage{Key: key, URL: url})
	}

	c.appendImages(images...)
	return nil
}

func (c *Controller) appendImages(images ...models.UploadedImage) {
	if len(images) == 0 {
		return
	}
	c.mu.Lock()
	c.state.Images = append(c.state.Images, images...)
	c.mu.Unlock()
}
