package client_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adamwoolhether/screenscraper/client"
	"github.com/adamwoolhether/screenscraper/errs"
	"github.com/adamwoolhether/screenscraper/sstest"
)

func ExampleBuild() {
	c, err := client.Build(
		client.Credentials{SoftwareName: "myscraper", DevID: "dev", DevPassword: "secret"},
		client.WithTimeout(30*time.Second),
		client.WithUserAgent("myscraper/1.0"),
		client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleBuild_invalid() {
	_, err := client.Build(client.Credentials{SoftwareName: "myscraper"})
	fmt.Println(errs.IsFieldErrors(err))
	// Output: true
}

func ExampleClient_Game() {
	srv := sstest.NewUnmanagedServer()
	defer srv.Close()

	srv.AddGame(sstest.Game{ID: 3, PlatformID: 1, Name: "Sonic The Hedgehog 2", RomName: "sonic2.md", CRC: "24AB4C3A"})

	c, err := client.Build(srv.Credentials(), client.WithBaseURL(srv.URL))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	game, ok, err := c.Game(context.Background(), client.GameParams{PlatformID: 1, CRC: "24AB4C3A"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(ok, game.ID, game.Name("eu"))

	_, _, err = c.Game(context.Background(), client.GameParams{PlatformID: 1, RomName: "unknown.md"})
	fmt.Println(errors.Is(err, errs.ErrNotFound))
	// Output:
	// true 3 Sonic The Hedgehog 2
	// true
}

func ExampleClient_GameImage() {
	srv := sstest.NewUnmanagedServer()
	defer srv.Close()

	srv.AddMedia(sstest.Media{
		Path:    "mediaJeu.php",
		Media:   "box-2D(wor)",
		Keys:    map[string]string{"systemeid": "1", "jeuid": "3"},
		Content: []byte("png"),
		CRC:     "ABCDEF12",
	})

	c, err := client.Build(srv.Credentials(), client.WithBaseURL(srv.URL))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dir, err := os.MkdirTemp("", "screenscraper-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "box.png")

	for _, mp := range []client.MediaParams{
		{Media: "box-2D(wor)"},
		{Media: "box-2D(wor)", CRC: "abcdef12"},
		{Media: "box-3D(wor)"},
	} {
		res, err := c.GameImage(context.Background(), 1, 3, mp, client.ToFile(path))
		if err != nil {
			fmt.Println("error:", err)
			return
		}

		switch v := res.(type) {
		case client.Downloaded:
			fmt.Println("downloaded", v.Bytes, "bytes")
		case client.MediaStatus:
			fmt.Println(v)
		}
	}
	// Output:
	// downloaded 3 bytes
	// CRCOK
	// NOMEDIA
}

func ExampleGetJSON() {
	type payload struct {
		Echo string `json:"echo"`
	}

	srv := sstest.NewUnmanagedServer()
	defer srv.Close()

	srv.Handle("echo.php", func(w http.ResponseWriter, r *http.Request) {
		sstest.WriteEnvelope(w, payload{Echo: r.URL.Query().Get("say")})
	})

	c, err := client.Build(srv.Credentials(), client.WithBaseURL(srv.URL))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	got, err := client.GetJSON[payload](context.Background(), c, client.Request{
		Path:   "echo.php",
		Params: client.Params{}.Add("say", "bonjour"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(got.Echo)
	// Output: bonjour
}
