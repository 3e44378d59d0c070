package sstest

import (
	"net/http"
	"strings"
)

func (s *Server) routes() map[string]http.HandlerFunc {
	catalog := func(key string, v any) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			WriteEnvelope(w, map[string]any{key: v})
		}
	}

	return map[string]http.HandlerFunc{
		"ssinfraInfos.php": catalog("serveurs", infra()),
		"ssuserInfos.php":  s.requireUser(catalog("ssuser", user())),
		"userlevelsListe.php": catalog("userlevels", map[string]any{
			"2": map[string]string{"id": "2", "nom_fr": "Contributeur"},
			"1": map[string]string{"id": "1", "nom_fr": "Membre"},
		}),
		"nbJoueursListe.php": catalog("nbjoueurs", map[string]any{
			"1": map[string]string{"id": "1", "nom": "1", "parent": "0"},
			"2": map[string]string{"id": "2", "nom": "1-2", "parent": "0"},
		}),
		"supportTypesListe.php": catalog("supporttypes", []string{"cartouche", "cd", "disquette"}),
		"romTypesListe.php":     catalog("romtypes", []string{"rom", "iso", "dossier"}),
		"genresListe.php": catalog("genres", map[string]any{
			"10": map[string]string{"id": "10", "nom_fr": "Course", "nom_en": "Racing", "parent": "0"},
			"1":  map[string]string{"id": "1", "nom_fr": "Action", "nom_en": "Action", "parent": "0"},
		}),
		"regionsListe.php": catalog("regions", map[string]any{
			"1": map[string]string{"id": "1", "nomcourt": "wor", "nom_fr": "Monde", "nom_en": "World", "parent": "0"},
		}),
		"languesListe.php": catalog("langues", map[string]any{
			"1": map[string]string{"id": "1", "nomcourt": "en", "nom_fr": "Anglais", "nom_en": "English", "parent": "0"},
		}),
		"classificationListe.php": catalog("classifications", []map[string]any{{}}),
		"mediasSystemeListe.php": catalog("medias", map[string]any{
			"1": map[string]string{"id": "1", "nomcourt": "wheel", "nom": "Logo", "autogen": "0", "multiregions": "1"},
		}),
		"mediasJeuListe.php": catalog("medias", map[string]any{
			"1": map[string]string{"id": "1", "nomcourt": "box-2D", "nom": "Box 2D", "autogen": "0", "multiregions": "1"},
		}),
		"infosJeuListe.php": catalog("infos", map[string]any{
			"1": map[string]string{"id": "1", "nomcourt": "name", "nom": "Nom", "multiregions": "1"},
		}),
		"infosRomListe.php": catalog("infos", map[string]any{}),
		"systemesListe.php": s.platformList,
		"jeuRecherche.php":  s.requireUser(s.search),
		"jeuInfos.php":      s.gameInfo,

		"mediaJeu.php":          s.requireUser(s.serveMedia),
		"mediaVideoJeu.php":     s.requireUser(s.serveMedia),
		"mediaManuelJeu.php":    s.requireUser(s.serveMedia),
		"mediaSysteme.php":      s.requireUser(s.serveMedia),
		"mediaVideoSysteme.php": s.requireUser(s.serveMedia),
		"mediaCompagnie.php":    s.requireUser(s.serveMedia),
		"mediaGroup.php":        s.requireUser(s.serveMedia),
	}
}

func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("ssid") != UserName || q.Get("sspassword") != UserPassword {
			WriteText(w, http.StatusUnauthorized, PhraseMembersOnly)
			return
		}
		next(w, r)
	}
}

func (s *Server) platformList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	platforms := make([]map[string]any, 0, len(s.platforms))
	for _, p := range s.platforms {
		platforms = append(platforms, p.render())
	}
	s.mu.Unlock()

	var list any = platforms
	if len(platforms) == 0 {
		list = []map[string]any{{}}
	}

	WriteEnvelope(w, map[string]any{
		"serveurs": infra(),
		"systemes": list,
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := strings.ToLower(q.Get("recherche"))
	if name == "" {
		WriteText(w, http.StatusBadRequest, PhraseMissingFields)
		return
	}

	s.mu.Lock()
	var games []map[string]any
	for _, g := range s.games {
		if sys := q.Get("systemeid"); sys != "" && sys != itoa(g.PlatformID) {
			continue
		}
		if strings.Contains(strings.ToLower(g.Name), name) {
			games = append(games, g.render())
		}
	}
	s.mu.Unlock()

	var list any = games
	if len(games) == 0 {
		list = []map[string]any{{}}
	}

	WriteEnvelope(w, map[string]any{
		"serveurs": infra(),
		"ssuser":   user(),
		"jeux":     list,
	})
}

func (s *Server) gameInfo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("systemeid") == "" && q.Get("gameid") == "" {
		WriteText(w, http.StatusBadRequest, PhraseMissingFields)
		return
	}

	s.mu.Lock()
	var found map[string]any
	for _, g := range s.games {
		if g.match(q.Get) {
			found = g.render()
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		WriteText(w, http.StatusNotFound, PhraseNotFound)
		return
	}

	resp := map[string]any{
		"serveurs": infra(),
		"jeu":      found,
	}
	if q.Get("ssid") != "" {
		resp["ssuser"] = user()
	}

	WriteEnvelope(w, resp)
}

func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path := strings.TrimPrefix(r.URL.Path, "/api2/")

	s.mu.Lock()
	var found *Media
	for i, m := range s.media {
		if m.Path != path || m.Media != q.Get("media") {
			continue
		}

		matched := true
		for k, v := range m.Keys {
			if q.Get(k) != v {
				matched = false
				break
			}
		}
		if matched {
			found = &s.media[i]
			break
		}
	}
	var m Media
	if found != nil {
		m = *found
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	switch {
	case found == nil:
		_, _ = w.Write([]byte("NOMEDIA"))
	case m.CRC != "" && strings.EqualFold(q.Get("crc"), m.CRC):
		_, _ = w.Write([]byte("CRCOK"))
	case m.MD5 != "" && strings.EqualFold(q.Get("md5"), m.MD5):
		_, _ = w.Write([]byte("MD5OK"))
	case m.SHA1 != "" && strings.EqualFold(q.Get("sha1"), m.SHA1):
		_, _ = w.Write([]byte("SHA1OK"))
	default:
		contentType := m.ContentType
		if contentType == "" {
			contentType = "image/png"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", itoa(len(m.Content)))
		_, _ = w.Write(m.Content)
	}
}
