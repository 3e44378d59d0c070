package model

import "github.com/adamwoolhether/screenscraper/client/flex"

// Game is a game record as returned by game lookup and search.
type Game struct {
	ID              flex.Int                 `json:"id"`
	Names           flex.List[RegionText]    `json:"noms"`
	System          GameSystem               `json:"systeme"`
	Publisher       *IDText                  `json:"editeur,omitempty"`
	Developer       *IDText                  `json:"developpeur,omitempty"`
	Players         *Text                    `json:"joueurs,omitempty"`
	Rating          *Text                    `json:"note,omitempty"`
	TopStaff        flex.Bool                `json:"topstaff"`
	NotGame         flex.Bool                `json:"notgame"`
	CloneOf         flex.NullInt             `json:"cloneof"`
	Rotation        flex.NullInt             `json:"rotation"`
	Resolution      string                   `json:"resolution,omitempty"`
	Controls        flex.NullInt             `json:"controles"`
	Colors          flex.NullInt             `json:"couleurs"`
	Actions         flex.List[GameAction]    `json:"actions"`
	Classifications flex.List[Classified]    `json:"classifications"`
	ReleaseDates    flex.List[RegionText]    `json:"dates"`
	Families        flex.List[GameTag]       `json:"familles"`
	Genres          flex.List[GameTag]       `json:"genres"`
	Modes           flex.List[GameTag]       `json:"modes"`
	Numbers         flex.List[GameTag]       `json:"numeros"`
	Themes          flex.List[GameTag]       `json:"themes"`
	Styles          flex.List[GameTag]       `json:"styles"`
	Synopsis        flex.List[LocalizedText] `json:"synopsis"`
	Medias          flex.List[GameMedia]     `json:"medias"`
	RomID           flex.NullInt             `json:"romid"`
	Rom             *Rom                     `json:"rom,omitempty"`
	Roms            flex.List[Rom]           `json:"roms"`
}

// Name returns the name for region, falling back to the world ("wor")
// name and then the first name available.
func (g Game) Name(region string) string {
	var fallback string
	for _, n := range g.Names {
		switch n.Region {
		case region:
			return n.Text
		case "wor":
			fallback = n.Text
		}
	}

	if fallback == "" && len(g.Names) > 0 {
		fallback = g.Names[0].Text
	}

	return fallback
}

// MediaOfType returns the media entries of the given type, such as
// "box-2D" or "ss".
func (g Game) MediaOfType(typ string) []GameMedia {
	var out []GameMedia
	for _, m := range g.Medias {
		if m.Type == typ {
			out = append(out, m)
		}
	}

	return out
}

type RegionText struct {
	Region string `json:"region"`
	Text   string `json:"text"`
}

type LocalizedText struct {
	Language string `json:"langue"`
	Text     string `json:"text"`
}

type Text struct {
	Text string `json:"text"`
}

type IDText struct {
	ID   flex.Int `json:"id"`
	Text string   `json:"text"`
}

type GameSystem struct {
	ID       flex.Int     `json:"id"`
	Name     string       `json:"text"`
	ParentID flex.NullInt `json:"parentid"`
}

type GameAction struct {
	ID       flex.Int               `json:"id"`
	Controls flex.List[GameControl] `json:"controle"`
}

type GameControl struct {
	Language     string `json:"langue"`
	Text         string `json:"text"`
	RecalboxText string `json:"recalboxtext"`
}

type Classified struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// GameTag is an entry of a game's families, genres, modes, numbers,
// themes or styles.
type GameTag struct {
	ID        flex.Int                 `json:"id"`
	ShortName string                   `json:"nomcourt"`
	Primary   flex.Bool                `json:"principale"`
	ParentID  flex.NullInt             `json:"parentid"`
	Names     flex.List[LocalizedText] `json:"noms"`
}

// GameMedia describes a media asset attached to a game. The checksums can
// be sent back on a media request so the server skips unchanged files.
type GameMedia struct {
	ID        flex.NullInt `json:"id"`
	Type      string       `json:"type"`
	Parent    string       `json:"parent"`
	URL       string       `json:"url"`
	Region    string       `json:"region,omitempty"`
	CRC       string       `json:"crc"`
	MD5       string       `json:"md5"`
	SHA1      string       `json:"sha1"`
	Size      flex.NullInt `json:"size"`
	Format    string       `json:"format"`
	Support   flex.NullInt `json:"support"`
	PosH      flex.NullInt `json:"posh"`
	PosW      flex.NullInt `json:"posw"`
	PosX      flex.NullInt `json:"posx"`
	PosY      flex.NullInt `json:"posy"`
	SubParent string       `json:"subparent,omitempty"`
	Version   string       `json:"version,omitempty"`
}

// Rom is a ROM file known to the database.
type Rom struct {
	ID           flex.Int     `json:"id"`
	Filename     string       `json:"romfilename"`
	Size         flex.NullInt `json:"romsize"`
	CRC          string       `json:"romcrc"`
	MD5          string       `json:"rommd5"`
	SHA1         string       `json:"romsha1"`
	CloneOf      flex.NullInt `json:"romcloneof"`
	NumSupport   flex.NullInt `json:"romnumsupport"`
	TotalSupport flex.NullInt `json:"romtotalsupport"`
	SupportType  string       `json:"romsupporttype,omitempty"`
	Type         string       `json:"romtype,omitempty"`
	RomRegions   string       `json:"romregions,omitempty"`
	Regions      *RomRegions  `json:"regions,omitempty"`
	Languages    *RomLangs    `json:"langues,omitempty"`
	Alternative  flex.Bool    `json:"alt"`
	Best         flex.Bool    `json:"best"`
	Beta         flex.Bool    `json:"beta"`
	Demo         flex.Bool    `json:"demo"`
	Hack         flex.Bool    `json:"hack"`
	Netplay      flex.Bool    `json:"netplay"`
	Prototype    flex.Bool    `json:"proto"`
	Translated   flex.Bool    `json:"trad"`
	Unlicensed   flex.Bool    `json:"unl"`
}

type RomRegions struct {
	IDs        flex.List[flex.Int] `json:"regions_id"`
	ShortNames flex.List[string]   `json:"regions_shortname"`
	DE         flex.List[string]   `json:"regions_de"`
	EN         flex.List[string]   `json:"regions_en"`
	ES         flex.List[string]   `json:"regions_es"`
	FR         flex.List[string]   `json:"regions_fr"`
	IT         flex.List[string]   `json:"regions_it"`
	PT         flex.List[string]   `json:"regions_pt"`
}

type RomLangs struct {
	IDs        flex.List[flex.Int] `json:"langues_id"`
	ShortNames flex.List[string]   `json:"langues_shortname"`
	DE         flex.List[string]   `json:"langues_de"`
	EN         flex.List[string]   `json:"langues_en"`
	ES         flex.List[string]   `json:"langues_es"`
	FR         flex.List[string]   `json:"langues_fr"`
	IT         flex.List[string]   `json:"langues_it"`
	PT         flex.List[string]   `json:"langues_pt"`
}
