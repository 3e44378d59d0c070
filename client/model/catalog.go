package model

import "github.com/adamwoolhether/screenscraper/client/flex"

// Names holds the localized names shared by the catalog listings.
type Names struct {
	FR string `json:"nom_fr"`
	EN string `json:"nom_en,omitempty"`
	DE string `json:"nom_de,omitempty"`
	ES string `json:"nom_es,omitempty"`
	IT string `json:"nom_it,omitempty"`
	PT string `json:"nom_pt,omitempty"`
}

// In returns the name for a two-letter language code, falling back to
// English and then French.
func (n Names) In(lang string) string {
	var s string
	switch lang {
	case "en":
		s = n.EN
	case "de":
		s = n.DE
	case "es":
		s = n.ES
	case "it":
		s = n.IT
	case "pt":
		s = n.PT
	case "fr":
		s = n.FR
	}

	switch {
	case s != "":
		return s
	case n.EN != "":
		return n.EN
	default:
		return n.FR
	}
}

// Pictograms are the icon media attached to genres, languages and
// classifications.
type Pictograms struct {
	Monochrome string `json:"media_pictomonochrome,omitempty"`
	Color      string `json:"media_pictocouleur,omitempty"`
	Background string `json:"media_background,omitempty"`
}

type Genre struct {
	ID flex.Int `json:"id"`
	Names
	ParentID flex.Int    `json:"parent"`
	Medias   *Pictograms `json:"medias,omitempty"`
}

type Language struct {
	ID        flex.Int `json:"id"`
	ShortName string   `json:"nomcourt"`
	Names
	ParentID flex.Int    `json:"parent"`
	Medias   *Pictograms `json:"medias,omitempty"`
}

type Classification struct {
	ID        flex.Int `json:"id"`
	ShortName string   `json:"nomcourt"`
	Names
	ParentID flex.Int    `json:"parent"`
	Medias   *Pictograms `json:"medias,omitempty"`
}

type Region struct {
	ID        flex.Int `json:"id"`
	ShortName string   `json:"nomcourt"`
	Names
	ParentID flex.Int          `json:"parent"`
	Medias   map[string]string `json:"medias,omitempty"`
}

type PlayerCount struct {
	ID       flex.Int `json:"id"`
	Name     string   `json:"nom"`
	ParentID flex.Int `json:"parent"`
}

// MediaType describes a kind of media, for platforms or for games.
type MediaType struct {
	ID            flex.Int  `json:"id"`
	ShortName     string    `json:"nomcourt"`
	Name          string    `json:"nom"`
	Category      string    `json:"categorie"`
	PlatformTypes string    `json:"plateformtypes"`
	Platforms     string    `json:"plateforms"`
	Type          string    `json:"type"`
	FileFormat    string    `json:"fileformat"`
	FileFormat2   string    `json:"fileformat2"`
	AutoGenerated flex.Bool `json:"autogen"`
	MultiRegions  flex.Bool `json:"multiregions"`
	MultiSupports flex.Bool `json:"multisupports"`
	MultiVersions flex.Bool `json:"multiversions"`
	ExtraInfo     string    `json:"extrainfostxt,omitempty"`
}

// InfoField describes an informational field available for games or ROMs.
type InfoField struct {
	ID            flex.Int  `json:"id"`
	ShortName     string    `json:"nomcourt"`
	Name          string    `json:"nom"`
	Category      string    `json:"categorie"`
	PlatformTypes string    `json:"plateformtypes"`
	Type          string    `json:"type"`
	AutoGenerated flex.Bool `json:"autogen"`
	MultiRegions  flex.Bool `json:"multiregions"`
	MultiSupports flex.Bool `json:"multisupports"`
	MultiVersions flex.Bool `json:"multiversions"`
}
