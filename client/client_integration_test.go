//go:build integration

package client_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adamwoolhether/screenscraper/client"
	"github.com/adamwoolhether/screenscraper/errs"
)

// Sonic The Hedgehog 2 (World) on Megadrive.
const (
	megadriveID = 1
	sonic2CRC   = "24AB4C3A"
	sonic2Name  = "Sonic The Hedgehog 2 (World).zip"
	sonic2Size  = 749652
)

func liveClient(t *testing.T) *client.Client {
	t.Helper()

	creds, err := client.CredentialsFromEnv()
	if err != nil {
		t.Skipf("live credentials not configured: %v", err)
	}

	c, err := client.Build(creds,
		client.WithTimeout(time.Minute),
		client.WithUserAgent("screenscraper-go-integration"),
	)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return c
}

func TestIntegration_InfrastructureInfo(t *testing.T) {
	c := liveClient(t)

	info, err := c.InfrastructureInfo(t.Context(), false)
	if err != nil {
		t.Fatalf("infrastructure info: %v", err)
	}
	if info.MaxThreadsMember <= 0 {
		t.Errorf("unexpected infrastructure info %+v", info)
	}
}

func TestIntegration_Platforms(t *testing.T) {
	c := liveClient(t)

	platforms, err := c.Platforms(t.Context())
	if err != nil {
		t.Fatalf("platforms: %v", err)
	}

	for _, p := range platforms {
		if p.ID == megadriveID {
			return
		}
	}
	t.Errorf("platform %d not found among %d platforms", megadriveID, len(platforms))
}

func TestIntegration_Game(t *testing.T) {
	c := liveClient(t)

	game, ok, err := c.Game(t.Context(), client.GameParams{
		PlatformID: megadriveID,
		RomName:    sonic2Name,
		RomSize:    sonic2Size,
		CRC:        sonic2CRC,
	})
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	if !ok {
		t.Fatal("expected a game")
	}

	again, ok, err := c.Game(t.Context(), client.GameParams{PlatformID: megadriveID, GameID: int(game.ID)})
	if err != nil || !ok {
		t.Fatalf("game by id: ok=%v err=%v", ok, err)
	}
	if again.ID != game.ID {
		t.Errorf("expected game %d, got %d", game.ID, again.ID)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "box.png")

	res, err := c.GameImage(t.Context(), megadriveID, int(game.ID), client.MediaParams{Media: "box-2D(wor)", Local: path}, client.ToFile(path))
	if err != nil {
		t.Fatalf("game image: %v", err)
	}
	if _, ok := res.(client.Downloaded); ok {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected media on disk: %v", err)
		}

		res, err = c.GameImage(t.Context(), megadriveID, int(game.ID), client.MediaParams{Media: "box-2D(wor)", Local: path}, client.ToFile(path))
		if err != nil {
			t.Fatalf("game image again: %v", err)
		}
		if status, ok := res.(client.MediaStatus); !ok || !status.UpToDate() {
			t.Errorf("expected the local copy to be current, got %v", res)
		}
	}
}

func TestIntegration_GameNotFound(t *testing.T) {
	c := liveClient(t)

	_, _, err := c.Game(t.Context(), client.GameParams{
		PlatformID: megadriveID,
		RomName:    "definitely-not-a-real-rom.zip",
		CRC:        "00000001",
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
