package client

import (
	"github.com/adamwoolhether/screenscraper/client/flex"
	"github.com/adamwoolhether/screenscraper/client/model"
)

// accountSnapshot is embedded in payloads that may carry the server and
// user state alongside their own data.
type accountSnapshot struct {
	Servers *model.ServerInfrastructureInfo `json:"serveurs"`
	User    *model.UserInfo                 `json:"ssuser"`
}

type infraPayload struct {
	Servers *model.ServerInfrastructureInfo `json:"serveurs"`
}

type userPayload struct {
	User *model.UserInfo `json:"ssuser"`
}

type userLevelsPayload struct {
	Levels flex.Dict[model.UserLevel] `json:"userlevels"`
}

type playerCountsPayload struct {
	PlayerCounts flex.Dict[model.PlayerCount] `json:"nbjoueurs"`
}

type supportTypesPayload struct {
	SupportTypes flex.List[string] `json:"supporttypes"`
}

type romTypesPayload struct {
	RomTypes flex.List[string] `json:"romtypes"`
}

type genresPayload struct {
	Genres flex.Dict[model.Genre] `json:"genres"`
}

type regionsPayload struct {
	Regions flex.Dict[model.Region] `json:"regions"`
}

type languagesPayload struct {
	Languages flex.Dict[model.Language] `json:"langues"`
}

type classificationsPayload struct {
	Classifications flex.Dict[model.Classification] `json:"classifications"`
}

type mediaTypesPayload struct {
	Medias flex.Dict[model.MediaType] `json:"medias"`
}

type infoFieldsPayload struct {
	Infos flex.Dict[model.InfoField] `json:"infos"`
}

type platformsPayload struct {
	accountSnapshot
	Platforms flex.List[model.Platform] `json:"systemes"`
}

type searchPayload struct {
	accountSnapshot
	Games flex.List[model.Game] `json:"jeux"`
}

type gamePayload struct {
	accountSnapshot
	Game *model.Game `json:"jeu"`
}
