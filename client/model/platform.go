package model

import "github.com/adamwoolhether/screenscraper/client/flex"

// Platform is a game system (console, computer, arcade board...).
type Platform struct {
	ID          flex.Int                     `json:"id"`
	Names       PlatformNames                `json:"noms"`
	Extensions  string                       `json:"extensions,omitempty"`
	Company     string                       `json:"compagnie,omitempty"`
	Type        string                       `json:"type,omitempty"`
	StartYear   string                       `json:"datedebut,omitempty"`
	EndYear     string                       `json:"datefin,omitempty"`
	RomType     string                       `json:"romtype"`
	SupportType string                       `json:"supporttype"`
	Medias      flex.List[map[string]string] `json:"medias"`
	ParentID    flex.NullInt                 `json:"parentid"`
}

type PlatformNames struct {
	EU        string `json:"nom_eu"`
	US        string `json:"nom_us,omitempty"`
	JP        string `json:"nom_jp,omitempty"`
	Recalbox  string `json:"nom_recalbox,omitempty"`
	RetroPie  string `json:"nom_retropie,omitempty"`
	LaunchBox string `json:"nom_launchbox,omitempty"`
	HyperSpin string `json:"nom_hyperspin,omitempty"`
	Common    string `json:"noms_commun,omitempty"`
}
