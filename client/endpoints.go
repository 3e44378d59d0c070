package client

import (
	"context"
	"fmt"

	"github.com/adamwoolhether/screenscraper/client/model"
)

// InfrastructureInfo returns the server load and access limits. When
// cached is set and a snapshot is held, no request is made. An empty
// reply yields the zero value and leaves the cache untouched.
func (c *Client) InfrastructureInfo(ctx context.Context, cached bool) (model.ServerInfrastructureInfo, error) {
	if cached {
		if v, ok := c.cache.Infrastructure(); ok {
			return v, nil
		}
	}

	p, err := GetJSON[infraPayload](ctx, c, Request{Path: "ssinfraInfos.php"})
	if err != nil {
		return model.ServerInfrastructureInfo{}, err
	}

	// An empty reply is not a snapshot; keep whatever the cache holds.
	if p.Servers == nil {
		return model.ServerInfrastructureInfo{}, nil
	}

	c.cache.SetInfrastructure(*p.Servers)

	return *p.Servers, nil
}

// UserInfo returns the authenticated user's account state. The bool is
// false when the server returned no user.
func (c *Client) UserInfo(ctx context.Context, cached bool) (model.UserInfo, bool, error) {
	if cached {
		if v, ok := c.cache.User(); ok {
			return v, true, nil
		}
	}

	p, err := GetJSON[userPayload](ctx, c, Request{Path: "ssuserInfos.php", Auth: true})
	if err != nil {
		return model.UserInfo{}, false, err
	}

	if p.User == nil {
		return model.UserInfo{}, false, nil
	}

	c.cache.SetUser(*p.User)

	return *p.User, true, nil
}

// UserLevels lists the contributor levels, ordered by id.
func (c *Client) UserLevels(ctx context.Context) ([]model.UserLevel, error) {
	p, err := GetJSON[userLevelsPayload](ctx, c, Request{Path: "userlevelsListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Levels.Values(), nil
}

// PlayerCounts lists the player count categories, ordered by id.
func (c *Client) PlayerCounts(ctx context.Context) ([]model.PlayerCount, error) {
	p, err := GetJSON[playerCountsPayload](ctx, c, Request{Path: "nbJoueursListe.php"})
	if err != nil {
		return nil, err
	}

	return p.PlayerCounts.Values(), nil
}

// SupportTypes lists the physical media kinds (cartridge, disc...).
func (c *Client) SupportTypes(ctx context.Context) ([]string, error) {
	p, err := GetJSON[supportTypesPayload](ctx, c, Request{Path: "supportTypesListe.php"})
	if err != nil {
		return nil, err
	}

	return nonNil(p.SupportTypes), nil
}

// RomTypes lists the accepted ROM types (rom, iso, dossier...).
func (c *Client) RomTypes(ctx context.Context) ([]string, error) {
	p, err := GetJSON[romTypesPayload](ctx, c, Request{Path: "romTypesListe.php"})
	if err != nil {
		return nil, err
	}

	return nonNil(p.RomTypes), nil
}

// Genres lists the game genres, ordered by id.
func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	p, err := GetJSON[genresPayload](ctx, c, Request{Path: "genresListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Genres.Values(), nil
}

// Regions lists the regions, ordered by id.
func (c *Client) Regions(ctx context.Context) ([]model.Region, error) {
	p, err := GetJSON[regionsPayload](ctx, c, Request{Path: "regionsListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Regions.Values(), nil
}

// Languages lists the languages, ordered by id.
func (c *Client) Languages(ctx context.Context) ([]model.Language, error) {
	p, err := GetJSON[languagesPayload](ctx, c, Request{Path: "languesListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Languages.Values(), nil
}

// Classifications lists the age rating classifications, ordered by id.
func (c *Client) Classifications(ctx context.Context) ([]model.Classification, error) {
	p, err := GetJSON[classificationsPayload](ctx, c, Request{Path: "classificationListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Classifications.Values(), nil
}

// PlatformMediaTypes lists the media kinds available for platforms.
func (c *Client) PlatformMediaTypes(ctx context.Context) ([]model.MediaType, error) {
	p, err := GetJSON[mediaTypesPayload](ctx, c, Request{Path: "mediasSystemeListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Medias.Values(), nil
}

// GameMediaTypes lists the media kinds available for games.
func (c *Client) GameMediaTypes(ctx context.Context) ([]model.MediaType, error) {
	p, err := GetJSON[mediaTypesPayload](ctx, c, Request{Path: "mediasJeuListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Medias.Values(), nil
}

// GameInfoFields lists the informational fields available for games.
func (c *Client) GameInfoFields(ctx context.Context) ([]model.InfoField, error) {
	p, err := GetJSON[infoFieldsPayload](ctx, c, Request{Path: "infosJeuListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Infos.Values(), nil
}

// RomInfoFields lists the informational fields available for ROMs.
func (c *Client) RomInfoFields(ctx context.Context) ([]model.InfoField, error) {
	p, err := GetJSON[infoFieldsPayload](ctx, c, Request{Path: "infosRomListe.php"})
	if err != nil {
		return nil, err
	}

	return p.Infos.Values(), nil
}

// Platforms lists every platform known to the database.
func (c *Client) Platforms(ctx context.Context) ([]model.Platform, error) {
	p, err := GetJSON[platformsPayload](ctx, c, Request{Path: "systemesListe.php"})
	if err != nil {
		return nil, err
	}

	c.remember(p.Servers, p.User)

	return nonNil(p.Platforms), nil
}

// SearchGames searches games by name, optionally on one platform.
func (c *Client) SearchGames(ctx context.Context, sp SearchParams) ([]model.Game, error) {
	if err := Validate(sp); err != nil {
		return nil, fmt.Errorf("validating search params: %w", err)
	}

	p, err := GetJSON[searchPayload](ctx, c, Request{Path: "jeuRecherche.php", Auth: true, Params: sp.params()})
	if err != nil {
		return nil, err
	}

	c.remember(p.Servers, p.User)

	return nonNil(p.Games), nil
}

// Game looks up a single game. An unknown game is reported by the API as
// an *errs.APIError matching errs.ErrNotFound. The bool is false when the
// call succeeded without a game record.
func (c *Client) Game(ctx context.Context, gp GameParams) (model.Game, bool, error) {
	if err := Validate(gp); err != nil {
		return model.Game{}, false, fmt.Errorf("validating game params: %w", err)
	}

	p, err := GetJSON[gamePayload](ctx, c, Request{Path: "jeuInfos.php", Auth: true, Params: gp.params()})
	if err != nil {
		return model.Game{}, false, err
	}

	c.remember(p.Servers, p.User)

	if p.Game == nil {
		return model.Game{}, false, nil
	}

	return *p.Game, true, nil
}

func nonNil[S ~[]E, E any](s S) []E {
	if s == nil {
		return []E{}
	}
	return s
}
