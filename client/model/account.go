package model

import "github.com/adamwoolhether/screenscraper/client/flex"

// ServerInfrastructureInfo reports the load and access limits of the
// ScreenScraper servers.
type ServerInfrastructureInfo struct {
	CPU1                flex.Int     `json:"cpu1"`
	CPU2                flex.Int     `json:"cpu2"`
	CPU3                flex.Int     `json:"cpu3"`
	CPU4                flex.Int     `json:"cpu4"`
	ThreadsLastMinute   flex.Int     `json:"threadsmin"`
	ScrapersLastMinute  flex.Int     `json:"nbscrapeurs"`
	AccessesToday       flex.NullInt `json:"apiacces"`
	ClosedForNonMembers flex.Bool    `json:"closefornomember"`
	ClosedForLeechers   flex.Bool    `json:"closeforleecher"`
	MaxThreadsNonMember flex.Int     `json:"maxthreadfornonmember"`
	ThreadsNonMember    flex.Int     `json:"threadfornonmember"`
	MaxThreadsMember    flex.Int     `json:"maxthreadformember"`
	ThreadsMember       flex.Int     `json:"threadformember"`
}

// UserInfo is the account state of the authenticated user, including
// the quotas the server enforces.
type UserInfo struct {
	Username             string    `json:"id"`
	ID                   flex.Int  `json:"numid"`
	Level                flex.Int  `json:"niveau"`
	Contribution         flex.Int  `json:"contribution"`
	SystemUploads        flex.Int  `json:"uploadsysteme"`
	InfoUploads          flex.Int  `json:"uploadinfos"`
	RomAssociations      flex.Int  `json:"romasso"`
	MediaUploads         flex.Int  `json:"uploadmedia"`
	ApprovedProposals    flex.Int  `json:"propositionok"`
	RejectedProposals    flex.Int  `json:"propositionko"`
	RejectionRate        flex.Int  `json:"quotarefu"`
	MaxThreads           flex.Int  `json:"maxthreads"`
	MaxDownloadSpeed     flex.Int  `json:"maxdownloadspeed"`
	RequestsToday        flex.Int  `json:"requeststoday"`
	FailedRequestsToday  flex.Int  `json:"requestskotoday"`
	MaxRequestsPerMinute flex.Int  `json:"maxrequestspermin"`
	MaxRequestsPerDay    flex.Int  `json:"maxrequestsperday"`
	MaxFailedPerDay      flex.Int  `json:"maxrequestskoperday"`
	Visits               flex.Int  `json:"visites"`
	LastVisit            flex.Time `json:"datedernierevisite"`
	FavoriteRegion       string    `json:"favregion,omitempty"`
}

// RemainingToday returns how many requests the user may still make today.
func (u UserInfo) RemainingToday() int64 {
	left := int64(u.MaxRequestsPerDay) - int64(u.RequestsToday)
	if left < 0 {
		return 0
	}
	return left
}

type UserLevel struct {
	ID     flex.Int `json:"id"`
	NameFR string   `json:"nom_fr"`
}

var levelNamesEN = map[string]string{
	"Membre":                                  "Inactive Member",
	"Contributeur Occasionnel":                "Casual Contributor",
	"Infographiste Contributeur Occasionnel":  "Casual Graphic Artist Contributor",
	"Contributeur":                            "Contributor",
	"Infographiste Contributeur":              "Infographist Contributor",
	"Fervent Contributeur":                    "Enthusiast Contributor",
	"Fervent Infographiste Contributeur":      "Enthusiast Graphic Artist Contributor",
	"Maître Contributeur":                     "Master Contributor",
	"Maître Infographiste Contributeur":       "Master Graphic Artist Contributor",
	"Grand Grourou Contributeur":              "Great Guru Contributor",
	"Grand Gourou Infographiste Contributeur": "Great Guru Graphic Designer Contributor",
	"Contributeur de Confiance":               "Trusted Contributor",
	"Infographiste Contributeur de Confiance": "Trusted Infographist Contributor",
	"Traducteur":                              "Translator",
	"Community Manager":                       "Community Manager",
	"Modérateur Système(s)":                   "System Moderator",
	"Modérateur":                              "Moderator",
	"Super Modérateur":                        "Super Moderator",
	"Admin":                                   "Administrator",
	"Super Admin":                             "Super Admin",
	"Robot":                                   "Robot",
	"Darwiniste qui en veut":                  "Darwinist",
	"Demi Dieu":                               "Half-God",
	"2/3 de Dieu":                             "2/3 God",
	"Dieu tout puissant":                      "Almighty God",
	"Chuck Norris":                            "Chuck Norris",
}

// NameEN returns the English level name, or the French one when no
// translation is known.
func (l UserLevel) NameEN() string {
	if s, ok := levelNamesEN[l.NameFR]; ok {
		return s
	}
	return l.NameFR
}
