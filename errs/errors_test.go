package errs_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/adamwoolhether/screenscraper/errs"
)

func TestNew_KnownPhrases(t *testing.T) {
	tests := map[string]struct {
		phrase   string
		category errs.Category
		sentinel error
	}{
		"bad request":        {"problème avec l'url", errs.CategoryBadRequest, errs.ErrBadRequest},
		"missing fields":     {"Il manque des champs obligatoires dans l'url", errs.CategoryMissingFields, errs.ErrMissingFields},
		"rom path":           {"Erreur dans le nom du fichier rom : celui-ci contient un chemin d'accés", errs.CategoryInvalidROMPath, errs.ErrInvalidROMPath},
		"checksum":           {"Champ crc, md5 ou sha1 erroné", errs.CategoryInvalidChecksum, errs.ErrInvalidChecksum},
		"rom name":           {"Problème dans le nom du fichier rom", errs.CategoryInvalidROMName, errs.ErrInvalidROMName},
		"unauthorized":       {"API fermé pour les non membres ou les membres inactifs", errs.CategoryUnauthorized, errs.ErrUnauthorized},
		"credentials":        {"Erreur de login : Vérifier vos identifiants développeur !", errs.CategoryBadCredentials, errs.ErrBadCredentials},
		"not found":          {"Erreur : Jeu non trouvée ! / Erreur : Rom/Iso/Dossier non trouvée !", errs.CategoryNotFound, errs.ErrNotFound},
		"locked":             {"API totalement fermé", errs.CategoryLocked, errs.ErrLocked},
		"blacklisted":        {"Le logiciel de scrape utilisé a été blacklisté (non conforme / version obsolète)", errs.CategoryBlacklisted, errs.ErrBlacklisted},
		"member threads":     {"Le nombre de threads autorisé pour le membre est atteint", errs.CategoryThreadLimit, errs.ErrThreadLimit},
		"threads per minute": {"Le nombre de threads par minute autorisé pour le membre est atteint", errs.CategoryThreadRateLimit, errs.ErrThreadRateLimit},
		"leecher threads":    {"The maximum threads allowed to leecher users is already used", errs.CategoryLeecherThreadLimit, errs.ErrLeecherThreadLimit},
		"global threads":     {"The maximum threads is already used", errs.CategoryThreadLimit, errs.ErrThreadLimit},
		"quota":              {"Votre quota de scrape est dépassé pour aujourd'hui !", errs.CategoryQuotaExceeded, errs.ErrQuotaExceeded},
		"unidentified roms":  {"Faite du tri dans vos fichiers roms et repassez demain !", errs.CategoryUnidentifiedROMs, errs.ErrUnidentifiedROMs},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := errs.New(tc.phrase, http.StatusBadRequest)

			if err.Category != tc.category {
				t.Fatalf("Category = %q, want %q", err.Category, tc.category)
			}
			if err.Message != tc.phrase {
				t.Fatalf("Message = %q, want raw phrase %q", err.Message, tc.phrase)
			}
			if !err.IsKnown() {
				t.Fatal("IsKnown should be true")
			}
			if err.Error() == tc.phrase {
				t.Fatal("Error() should be translated, got the raw phrase")
			}
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tc.sentinel)
			}
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	err := errs.New("Something odd", http.StatusTeapot)

	want := "an error has occurred on the ScreenScraper API with status code 418: Something odd"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != errs.CategoryUnknown {
		t.Fatalf("Category = %q, want unknown", err.Category)
	}
	if err.IsKnown() {
		t.Fatal("IsKnown should be false")
	}
	if !errors.Is(err, errs.ErrUnknown) {
		t.Fatal("unknown errors should wrap ErrUnknown")
	}
}

func TestNew_ExactMatchOnly(t *testing.T) {
	tests := map[string]string{
		"trailing space": "API totalement fermé ",
		"case":           "api totalement fermé",
		"substring":      "totalement fermé",
	}

	for name, phrase := range tests {
		t.Run(name, func(t *testing.T) {
			if err := errs.New(phrase, http.StatusForbidden); err.IsKnown() {
				t.Fatalf("phrase %q should not match the table", phrase)
			}
		})
	}
}

func TestNew_Decomposed(t *testing.T) {
	// "problème" with a combining grave accent.
	err := errs.New("proble\u0300me avec l'url", http.StatusBadRequest)

	if err.Category != errs.CategoryBadRequest {
		t.Fatalf("Category = %q, want %q", err.Category, errs.CategoryBadRequest)
	}
}

func TestRegister(t *testing.T) {
	const phrase = "Serveur en maintenance"

	if err := errs.Register(phrase, errs.CategoryLocked, "locked: maintenance"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	err := errs.New(phrase, http.StatusServiceUnavailable)
	if err.Category != errs.CategoryLocked {
		t.Fatalf("Category = %q, want %q", err.Category, errs.CategoryLocked)
	}
	if err.Error() != "locked: maintenance" {
		t.Fatalf("Error() = %q", err.Error())
	}

	if err := errs.Register("", errs.CategoryLocked, "x"); err == nil {
		t.Fatal("expected error for empty phrase")
	}
}

func TestTranslate(t *testing.T) {
	cat, msg, ok := errs.Translate("API totalement fermé")
	if !ok || cat != errs.CategoryLocked || msg == "" {
		t.Fatalf("Translate = (%q, %q, %v)", cat, msg, ok)
	}

	if cat, _, ok := errs.Translate("nope"); ok || cat != errs.CategoryUnknown {
		t.Fatalf("Translate(nope) = (%q, %v), want unknown", cat, ok)
	}
}

func TestCategory_IsThrottled(t *testing.T) {
	if !errs.CategoryQuotaExceeded.IsThrottled() {
		t.Fatal("quota exceeded should be throttled")
	}
	if errs.CategoryNotFound.IsThrottled() {
		t.Fatal("not found should not be throttled")
	}
}

func TestAPIError_JSON(t *testing.T) {
	err := errs.New("API totalement fermé", http.StatusLocked)

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal: %v", jsonErr)
	}

	var m map[string]any
	if jsonErr := json.Unmarshal(data, &m); jsonErr != nil {
		t.Fatalf("json.Unmarshal: %v", jsonErr)
	}

	if m["code"].(float64) != float64(http.StatusLocked) {
		t.Fatalf("JSON code = %v, want %d", m["code"], http.StatusLocked)
	}
	if m["category"] != string(errs.CategoryLocked) {
		t.Fatalf("JSON category = %v", m["category"])
	}
}

func TestGetAPIError(t *testing.T) {
	inner := errs.New("API totalement fermé", http.StatusLocked)
	wrapped := fmt.Errorf("wrapping: %w", inner)

	ae, ok := errs.GetAPIError(wrapped)
	if !ok {
		t.Fatal("GetAPIError should find *errs.APIError through wrapping")
	}
	if ae.StatusCode != http.StatusLocked {
		t.Fatalf("StatusCode = %d, want %d", ae.StatusCode, http.StatusLocked)
	}

	if _, ok := errs.GetAPIError(errors.New("plain")); ok {
		t.Fatal("plain error should not be an APIError")
	}
}

func TestNewFieldsError(t *testing.T) {
	err := errs.NewFieldsError("devid", fmt.Errorf("required"))

	fe := errs.GetFieldErrors(err)
	if fe == nil {
		t.Fatal("expected FieldErrors, got nil")
	}
	if len(fe) != 1 {
		t.Fatalf("len = %d, want 1", len(fe))
	}
	if fe.Fields()["devid"] != "required" {
		t.Fatalf("Fields = %v", fe.Fields())
	}
	if !errs.IsFieldErrors(fmt.Errorf("wrap: %w", err)) {
		t.Fatal("IsFieldErrors should see through wrapping")
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := errs.NewFieldsError("softname", fmt.Errorf("too short"))

	var arr []map[string]string
	if err := json.Unmarshal([]byte(fe.Error()), &arr); err != nil {
		t.Fatalf("Error() should produce valid JSON: %v", err)
	}
	if arr[0]["field"] != "softname" {
		t.Fatalf("field = %q, want %q", arr[0]["field"], "softname")
	}
}
