package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adamwoolhether/screenscraper/client/download"
)

// GameImage fetches an image of a game, such as "box-2D" or "ss".
func (c *Client) GameImage(ctx context.Context, platformID, gameID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaJeu.php", gameKeys(platformID, gameID), true, mp, dest, opts)
}

// GameVideo fetches a game video. Resizing options are ignored.
func (c *Client) GameVideo(ctx context.Context, platformID, gameID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaVideoJeu.php", gameKeys(platformID, gameID), false, mp, dest, opts)
}

// GameManual fetches a game manual, usually a PDF.
func (c *Client) GameManual(ctx context.Context, platformID, gameID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaManuelJeu.php", gameKeys(platformID, gameID), false, mp, dest, opts)
}

// PlatformImage fetches an image of a platform, such as "wheel" or "photo".
func (c *Client) PlatformImage(ctx context.Context, platformID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaSysteme.php", Params{}.Add("systemeid", strconv.Itoa(platformID)), true, mp, dest, opts)
}

// PlatformVideo fetches a platform video. Resizing options are ignored.
func (c *Client) PlatformVideo(ctx context.Context, platformID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaVideoSysteme.php", Params{}.Add("systemeid", strconv.Itoa(platformID)), false, mp, dest, opts)
}

// CompanyImage fetches a publisher or developer logo.
func (c *Client) CompanyImage(ctx context.Context, companyID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaCompagnie.php", Params{}.Add("groupid", strconv.Itoa(companyID)), true, mp, dest, opts)
}

// GroupImage fetches the image of a group (genre, mode, family...).
func (c *Client) GroupImage(ctx context.Context, groupID int, mp MediaParams, dest download.Destination, opts ...download.Option) (MediaResult, error) {
	return c.media(ctx, "mediaGroup.php", Params{}.Add("groupid", strconv.Itoa(groupID)), true, mp, dest, opts)
}

func gameKeys(platformID, gameID int) Params {
	return Params{}.
		Add("systemeid", strconv.Itoa(platformID)).
		Add("jeuid", strconv.Itoa(gameID))
}

func (c *Client) media(ctx context.Context, path string, keys Params, image bool, mp MediaParams, dest download.Destination, opts []download.Option) (MediaResult, error) {
	if err := Validate(mp); err != nil {
		return nil, fmt.Errorf("validating media params: %w", err)
	}

	mp, err := mp.withLocal()
	if err != nil {
		return nil, err
	}

	r := Request{
		Path:   path,
		Auth:   true,
		Params: append(keys, mp.params(image)...),
	}

	return c.GetMedia(ctx, r, dest, opts...)
}
