// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/danielhkuo/store-analytics/errs"
	"github.com/danielhkuo/store-analytics/middleware"
	"github.com/danielhkuo/store-analytics/models"
	"github.com/danielhkuo/store-analytics/store"
)

// APIBase is the prefix of every analytics endpoint.
const APIBase = "/api/v1/analytics"

const maxBodyBytes = 1 << 20

// requiredTrackFields are checked in this order; the error lists them the same way.
var requiredTrackFields = []string{"store_id", "unique_faces_count"}

type AnalyticsHandler struct {
	store store.VisitorStore
	now   func() time.Time
}

func NewAnalyticsHandler(st store.VisitorStore) *AnalyticsHandler {
	return &AnalyticsHandler{
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (h *AnalyticsHandler) success(w http.ResponseWriter, statusCode int, data any, message string) {
	middleware.JSONResponse(w, statusCode, models.NewEnvelope(h.now(), data, message, ""))
}

func (h *AnalyticsHandler) fail(w http.ResponseWriter, statusCode int, message string) {
	middleware.JSONResponse(w, statusCode, models.NewEnvelope(h.now(), nil, "", message))
}

// Home handles GET /
// Returns the API description and endpoint map
func (h *AnalyticsHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.success(w, http.StatusOK, models.HomeData{
		Version:     models.APIVersion,
		Description: "Store Analytics API",
		Endpoints: map[string]string{
			"Record Visitors": APIBase + "/visitors/",
			"List Records":    APIBase + "/records/",
			"Store Metrics":   APIBase + "/stores/metrics/",
		},
	}, "Welcome to Store Analytics API")
}

// TrackVisitors handles POST /api/v1/analytics/visitors/
// Records a unique-visitor count reported by the face-detection pipeline.
// Every failure, including storage faults, is answered with 400.
func (h *AnalyticsHandler) TrackVisitors(w http.ResponseWriter, r *http.Request) {
	body, err := middleware.ReadBody(w, r, maxBodyBytes)
	if err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := parseTrackPayload(body)
	if err != nil {
		slog.Warn("invalid visitor payload", "error", err)
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	var missing []string
	for _, field := range requiredTrackFields {
		if !payload.Get(field).Exists() {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		err := errs.Validation("Missing required fields: " + strings.Join(missing, ", "))
		slog.Warn("visitor payload missing fields", "missing", missing)
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	storeID := storeIDText(payload.Get("store_id"))

	count, err := store.ToCount(countValue(payload.Get("unique_faces_count")))
	if err != nil {
		slog.Warn("invalid unique_faces_count", "store_id", storeID, "error", err)
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.store.Create(r.Context(), storeID, models.DateOf(h.now()), count)
	if err != nil {
		slog.Error("failed to create visitor record",
			"store_id", storeID,
			"kind", errs.KindOf(err).String(),
			"error", err,
		)
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("visitor record created", "id", record.ID, "store_id", record.StoreID, "unique_visitors", record.UniqueVisitors)

	h.success(w, http.StatusCreated, record, "Visitor record created successfully")
}

// ListRecords handles GET /api/v1/analytics/records/
// Returns every record, newest date first
func (h *AnalyticsHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list visitor records", "error", err)
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, http.StatusOK, records, fmt.Sprintf("Retrieved %d records", len(records)))
}

// StoreMetrics handles GET /api/v1/analytics/stores/metrics/?store_id=&date=
// Sums unique visitors for a store, optionally on a single date.
// A malformed date is rejected by the store and answered with 500.
func (h *AnalyticsHandler) StoreMetrics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	storeID := lastValue(query, "store_id")
	if storeID == "" {
		h.fail(w, http.StatusBadRequest, errs.Validation("store_id query parameter is required").Error())
		return
	}

	exists, err := h.store.ExistsForStore(r.Context(), storeID)
	if err != nil {
		slog.Error("failed to check store records", "store_id", storeID, "error", err)
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !exists {
		h.fail(w, http.StatusNotFound, errs.NotFound("No records found for store "+storeID).Error())
		return
	}

	date := lastValue(query, "date")
	total, err := h.store.SumVisitors(r.Context(), storeID, date)
	if err != nil {
		slog.Error("failed to sum visitors",
			"store_id", storeID,
			"date", date,
			"op", errs.OpOf(err),
			"error", err,
		)
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, http.StatusOK, models.StoreMetrics{
		StoreID:        storeID,
		UniqueVisitors: total,
		LastUpdated:    models.FormatTimestamp(h.now()),
		Date:           date,
	}, "")
}

// parseTrackPayload returns the object to read fields from. An empty body is
// an empty object; an array contributes its first element.
func parseTrackPayload(body []byte) (gjson.Result, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return gjson.Parse("{}"), nil
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errors.New("JSON parse error - request body is not valid JSON")
	}

	payload := gjson.ParseBytes(body)
	if payload.IsArray() {
		items := payload.Array()
		if len(items) == 0 {
			return gjson.Result{}, errors.New("request payload list is empty")
		}
		payload = items[0]
	}
	if !payload.IsObject() {
		// scalars carry no fields; every required field reports as missing
		return gjson.Parse("{}"), nil
	}
	return payload, nil
}

// storeIDText renders store_id as stored text. Strings are kept verbatim;
// anything else gets the literal text form existing rows already use
// (None, True, 100.0, ['a', 1]).
func storeIDText(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}
	return literalText(v)
}

func literalText(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return "None"
	case gjson.True:
		return "True"
	case gjson.False:
		return "False"
	case gjson.String:
		return store.QuoteText(v.String())
	case gjson.Number:
		return numberText(v.Raw)
	}

	var parts []string
	if v.IsArray() {
		v.ForEach(func(_, item gjson.Result) bool {
			parts = append(parts, literalText(item))
			return true
		})
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if v.IsObject() {
		v.ForEach(func(key, item gjson.Result) bool {
			parts = append(parts, store.QuoteText(key.String())+": "+literalText(item))
			return true
		})
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return v.Raw
}

// numberText keeps integers exact at any size and always gives floats a
// decimal point or an exponent.
func numberText(raw string) string {
	if !strings.ContainsAny(raw, ".eE") {
		if n, ok := new(big.Int).SetString(raw, 10); ok {
			return n.String()
		}
		return raw
	}

	f, _ := strconv.ParseFloat(raw, 64)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// lastValue returns the final occurrence of a repeated query key.
func lastValue(query url.Values, key string) string {
	values := query[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// countValue keeps integral JSON numbers exact instead of going through float64.
func countValue(v gjson.Result) any {
	if v.Type == gjson.Number {
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n
		}
		return v.Num
	}
	return v.Value()
}
