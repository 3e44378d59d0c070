// Package client implements a typed client for the ScreenScraper
// video-game metadata API.
//
// # Building a Client
//
// Use [Build] with the developer credentials issued by ScreenScraper and
// functional options:
//
//	c, err := client.Build(client.Credentials{
//		SoftwareName: "myscraper/1.0",
//		DevID:        devID,
//		DevPassword:  devPassword,
//		UserName:     user,
//		UserPassword: password,
//	}, client.WithTimeout(30*time.Second))
//
// # Looking Up Games
//
// [Client.Game] identifies a game from a ROM; [GameParamsFromFile]
// fingerprints a local file for it:
//
//	gp, err := client.GameParamsFromFile(1, "/roms/megadrive/sonic2.md")
//	game, ok, err := c.Game(ctx, gp)
//	if errors.Is(err, errs.ErrNotFound) { ... }
//
// Upstream failures are returned as *errs.APIError with a stable
// category; see [github.com/adamwoolhether/screenscraper/errs].
//
// # Downloading Media
//
// Media calls stream to a [Destination] and return a [MediaResult]:
//
//	res, err := c.GameImage(ctx, 1, int(game.ID), client.MediaParams{
//		Media: "box-2D(wor)",
//		Local: "/media/sonic2.png",
//	}, client.ToFile("/media/sonic2.png"), client.WithProgressLog())
//
// When Local names an existing file its checksums are sent, and an
// unchanged asset comes back as a [MediaStatus] without any transfer.
//
// # Raw Access
//
// [GetJSON] and [Client.GetMedia] call any endpoint by path, for those
// the typed methods do not cover.
package client
