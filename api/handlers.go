package api

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aguxez/twwc-protein/models"
	"github.com/aguxez/twwc-protein/render"
	"github.com/aguxez/twwc-protein/settings"
)

// FormKey is the form field the admin page nests its settings under.
const FormKey = "protein_settings"

type SettingsRepository interface {
	ProteinSettingsInput() models.SettingsRecord
	Save(record models.SettingsRecord) error
}

type Handlers struct {
	Repo    SettingsRepository
	Options []settings.Option
	Log     logrus.FieldLogger
}

// HandleSettings serves GET and POST on the settings resource.
func (h *Handlers) HandleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.HandleSettingsGet(w, r)
	case http.MethodPost:
		h.HandleSettingsSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) HandleSettingsGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger(), h.Repo.ProteinSettingsInput())
}

// HandleSettingsSubmit normalizes a submitted form (or JSON body), saves
// the result and echoes it back.
func (h *Handlers) HandleSettingsSubmit(w http.ResponseWriter, r *http.Request) {
	raw, err := readSubmission(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n := settings.NewNormalizer(h.Repo, append([]settings.Option{settings.WithLogger(h.logger())}, h.Options...)...)
	record := n.Normalize(raw)

	if err := h.Repo.Save(record); err != nil {
		h.logger().WithError(err).Error("saving protein settings")
		http.Error(w, "could not save settings", http.StatusInternalServerError)
		return
	}

	h.logger().WithFields(logrus.Fields{
		"system":          record.System,
		"activity_levels": len(record.ActivityLevel),
	}).Info("protein settings saved")

	writeJSON(w, h.logger(), record)
}

func (h *Handlers) HandleSettingsSummary(w http.ResponseWriter, r *http.Request) {
	record := h.Repo.ProteinSettingsInput()
	if record.System == "" {
		http.Error(w, "no settings stored", http.StatusNotFound)
		return
	}

	summary, err := render.Summary(record)
	if err != nil {
		h.logger().WithError(err).Error("rendering summary")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(summary))
}

func (h *Handlers) logger() logrus.FieldLogger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}

func readSubmission(r *http.Request) (map[string]any, error) {
	var raw map[string]any

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		raw = DecodeBracketForm(r.PostForm)
	}

	if nested, ok := raw[FormKey].(map[string]any); ok {
		return nested, nil
	}
	return raw, nil
}

func writeJSON(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encoding response")
	}
}
