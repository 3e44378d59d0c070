package sstest

import (
	"strconv"
	"strings"
)

// Game is a game record served by the fake.
type Game struct {
	ID         int
	PlatformID int
	Name       string
	Publisher  string
	RomName    string
	RomSize    int64
	CRC        string
	MD5        string
	SHA1       string
}

// Platform is a platform record served by the fake.
type Platform struct {
	ID      int
	Name    string
	Company string
}

// Media is an asset served by the media endpoints. Keys are the query
// parameters identifying it, such as systemeid and jeuid.
type Media struct {
	Path        string
	Media       string
	Keys        map[string]string
	Content     []byte
	ContentType string
	CRC         string
	MD5         string
	SHA1        string
}

// AddGame registers a game.
func (s *Server) AddGame(g Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = append(s.games, g)
}

// AddPlatform registers a platform.
func (s *Server) AddPlatform(p Platform) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.platforms = append(s.platforms, p)
}

// AddMedia registers a media asset.
func (s *Server) AddMedia(m Media) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.media = append(s.media, m)
}

func (g Game) render() map[string]any {
	out := map[string]any{
		"id":      strconv.Itoa(g.ID),
		"romid":   "",
		"notgame": "false",
		"noms": []map[string]string{
			{"region": "wor", "text": g.Name},
		},
		"cloneof": "0",
		"systeme": map[string]string{
			"id":       strconv.Itoa(g.PlatformID),
			"text":     "",
			"parentid": "",
		},
		"topstaff":        "0",
		"rotation":        "0",
		"classifications": []map[string]any{{}},
		"genres":          []map[string]any{{}},
		"medias":          []map[string]any{{}},
	}

	if g.Publisher != "" {
		out["editeur"] = map[string]string{"id": "1", "text": g.Publisher}
	}

	if g.RomName != "" {
		out["rom"] = map[string]any{
			"id":          strconv.Itoa(g.ID*10 + 1),
			"romfilename": g.RomName,
			"romsize":     strconv.FormatInt(g.RomSize, 10),
			"romcrc":      g.CRC,
			"rommd5":      g.MD5,
			"romsha1":     g.SHA1,
			"beta":        "0",
			"demo":        "0",
			"best":        "1",
		}
	}

	return out
}

func (p Platform) render() map[string]any {
	return map[string]any{
		"id": strconv.Itoa(p.ID),
		"noms": map[string]string{
			"nom_eu": p.Name,
			"nom_us": p.Name,
		},
		"compagnie":   p.Company,
		"type":        "Console",
		"romtype":     "rom",
		"supporttype": "cartouche",
		"medias":      []map[string]any{{}},
		"parentid":    "",
	}
}

func infra() map[string]any {
	return map[string]any{
		"cpu1":                  "12",
		"cpu2":                  "8",
		"cpu3":                  "30",
		"cpu4":                  "4",
		"threadsmin":            "450",
		"nbscrapeurs":           "72",
		"apiacces":              "",
		"closefornomember":      "0",
		"closeforleecher":       "0",
		"maxthreadfornonmember": "300",
		"threadfornonmember":    "12",
		"maxthreadformember":    "900",
		"threadformember":       "80",
	}
}

func user() map[string]any {
	return map[string]any{
		"id":                  UserName,
		"numid":               "4242",
		"niveau":              "1",
		"contribution":        "0",
		"maxthreads":          "1",
		"maxdownloadspeed":    "128",
		"requeststoday":       "10",
		"requestskotoday":     "1",
		"maxrequestspermin":   "20",
		"maxrequestsperday":   "20000",
		"maxrequestskoperday": "2000",
		"visites":             "12",
		"datedernierevisite":  "2024-01-15 10:30:00",
		"favregion":           "eu",
	}
}

// match reports whether g is the game identified by q. Checksums win
// over the file name, as on the real service.
func (g Game) match(get func(string) string) bool {
	if id := get("gameid"); id != "" {
		return id == strconv.Itoa(g.ID)
	}

	if get("systemeid") != strconv.Itoa(g.PlatformID) {
		return false
	}

	if crc := get("crc"); crc != "" && strings.EqualFold(crc, g.CRC) {
		return true
	}
	if md5 := get("md5"); md5 != "" && strings.EqualFold(md5, g.MD5) {
		return true
	}
	if sha1 := get("sha1"); sha1 != "" && strings.EqualFold(sha1, g.SHA1) {
		return true
	}

	if get("crc") != "" || get("md5") != "" || get("sha1") != "" {
		return false
	}

	if name := get("romnom"); name == "" || name != g.RomName {
		return false
	}
	if size := get("romtaille"); size != "" && size != strconv.FormatInt(g.RomSize, 10) {
		return false
	}

	return true
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
