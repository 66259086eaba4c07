package line

import (
	"context"
	"encoding/json"
	"fmt"

	"zoo/internal/anomaly"
	"zoo/internal/auth"
	"zoo/internal/correction"
	"zoo/internal/eventlog"
	"zoo/internal/schedule"
	id "zoo/pkg/domain"
)

// Command is the closed set of actions a client may send.
type Command string

const (
	CmdLogin              Command = "login"
	CmdLogout             Command = "logout"
	CmdFeed               Command = "feed"
	CmdAddStateRecord     Command = "add_state_record"
	CmdRestock            Command = "restock"
	CmdRecordWastage      Command = "record_wastage"
	CmdAdjustStock        Command = "adjust_stock"
	CmdInventoryReport    Command = "inventory_report"
	CmdRecentFeedings     Command = "recent_feedings"
	CmdRecentStates       Command = "recent_states"
	CmdCorrectRecord      Command = "correct_record"
	CmdPreviewObservation Command = "preview_observation"
	CmdLogInputWarning    Command = "log_input_warning"
	CmdCheckAnomalies     Command = "check_anomalies"
	CmdBatchCheck         Command = "batch_check"
	CmdPendingAlerts      Command = "pending_alerts"
	CmdReviewAlert        Command = "review_alert"
	CmdHighRiskAnimals    Command = "high_risk_animals"
	CmdCarelessEmployees  Command = "careless_employees"
	CmdAuditLogs          Command = "audit_logs"
	CmdMyCorrections      Command = "my_corrections"
	CmdAssignShift        Command = "assign_shift"
)

// call carries the authenticated caller and raw parameters to a command.
type call struct {
	principal *auth.Principal
	token     string
	data      json.RawMessage
}

func (c call) actor() id.EmployeeID {
	if c.principal == nil {
		return ""
	}
	return c.principal.EmployeeID
}

type route struct {
	handle          func(ctx context.Context, c call) (string, any, error)
	requiresSession bool
	adminOnly       bool
}

func (h *Handler) buildRoutes() map[Command]route {
	user := func(fn func(context.Context, call) (string, any, error)) route {
		return route{handle: fn, requiresSession: true}
	}
	admin := func(fn func(context.Context, call) (string, any, error)) route {
		return route{handle: fn, requiresSession: true, adminOnly: true}
	}
	return map[Command]route{
		CmdLogin:              {handle: h.login},
		CmdLogout:             user(h.logout),
		CmdFeed:               user(h.feed),
		CmdAddStateRecord:     user(h.addStateRecord),
		CmdRestock:            admin(h.restock),
		CmdRecordWastage:      admin(h.recordWastage),
		CmdAdjustStock:        admin(h.adjustStock),
		CmdInventoryReport:    user(h.inventoryReport),
		CmdRecentFeedings:     user(h.recentFeedings),
		CmdRecentStates:       user(h.recentStates),
		CmdCorrectRecord:      user(h.correctRecord),
		CmdPreviewObservation: user(h.previewObservation),
		CmdLogInputWarning:    user(h.logInputWarning),
		CmdCheckAnomalies:     user(h.checkAnomalies),
		CmdBatchCheck:         admin(h.batchCheck),
		CmdPendingAlerts:      user(h.pendingAlerts),
		CmdReviewAlert:        admin(h.reviewAlert),
		CmdHighRiskAnimals:    admin(h.highRiskAnimals),
		CmdCarelessEmployees:  admin(h.carelessEmployees),
		CmdAuditLogs:          admin(h.auditLogs),
		CmdMyCorrections:      user(h.myCorrections),
		CmdAssignShift:        admin(h.assignShift),
	}
}

func (h *Handler) login(ctx context.Context, c call) (string, any, error) {
	req, err := decode[loginRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	employee, err := id.ParseEmployeeID(req.EmployeeID)
	if err != nil {
		return "", nil, err
	}
	sess, err := h.svc.Sessions.Login(ctx, employee, req.Password)
	if err != nil {
		return "", nil, err
	}
	return "welcome " + sess.Name, sess, nil
}

func (h *Handler) logout(ctx context.Context, c call) (string, any, error) {
	if _, err := decode[emptyRequest](h.validate, c.data); err != nil {
		return "", nil, err
	}
	if err := h.svc.Sessions.Logout(ctx, c.token); err != nil {
		return "", nil, err
	}
	return "logged out", nil, nil
}

func (h *Handler) feed(ctx context.Context, c call) (string, any, error) {
	req, err := decode[feedRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	animal, err := id.ParseAnimalID(req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	feed, err := id.ParseFeedItemID(req.FeedItemID)
	if err != nil {
		return "", nil, err
	}
	res, err := h.svc.Ledger.Feed(ctx, c.actor(), animal, feed, req.AmountKg.String())
	if err != nil {
		return "", nil, err
	}
	return res.Message, res, nil
}

func (h *Handler) addStateRecord(ctx context.Context, c call) (string, any, error) {
	req, err := decode[stateRecordRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	animal, err := id.ParseAnimalID(req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	res, err := h.svc.Observations.AddStateRecord(ctx, c.actor(), animal, req.WeightKg.String(), req.StatusCode)
	if err != nil {
		return "", nil, err
	}
	msg := fmt.Sprintf("state record %s saved", res.Record.ID)
	if res.Anomaly != nil && res.Anomaly.IsAnomaly() {
		msg += "; " + res.Anomaly.Message
	}
	return msg, res, nil
}

func (h *Handler) restock(ctx context.Context, c call) (string, any, error) {
	req, err := decode[stockRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	feed, err := id.ParseFeedItemID(req.FeedItemID)
	if err != nil {
		return "", nil, err
	}
	entry, err := h.svc.Ledger.Restock(ctx, c.actor(), feed, req.AmountKg.String())
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("restocked %s kg of %s", id.FormatKg(entry.Quantity), feed), entry, nil
}

func (h *Handler) recordWastage(ctx context.Context, c call) (string, any, error) {
	req, err := decode[stockRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	feed, err := id.ParseFeedItemID(req.FeedItemID)
	if err != nil {
		return "", nil, err
	}
	entry, err := h.svc.Ledger.RecordWastage(ctx, c.actor(), feed, req.AmountKg.String())
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("recorded %s kg of %s as wasted", id.FormatKg(entry.Quantity.Neg()), feed), entry, nil
}

func (h *Handler) adjustStock(ctx context.Context, c call) (string, any, error) {
	req, err := decode[adjustRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	feed, err := id.ParseFeedItemID(req.FeedItemID)
	if err != nil {
		return "", nil, err
	}
	entry, err := h.svc.Ledger.Adjust(ctx, c.actor(), feed, req.DeltaKg.String())
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("adjusted %s by %s kg", feed, id.FormatKg(entry.Quantity)), entry, nil
}

func (h *Handler) inventoryReport(ctx context.Context, c call) (string, any, error) {
	if _, err := decode[emptyRequest](h.validate, c.data); err != nil {
		return "", nil, err
	}
	levels, err := h.svc.Ledger.StockReport(ctx)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d feed items", len(levels)), levels, nil
}

func (h *Handler) recentFeedings(ctx context.Context, c call) (string, any, error) {
	req, err := decode[animalListRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	animal, err := id.ParseAnimalID(req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	records, err := h.svc.Ledger.RecentFeedings(ctx, animal, req.Limit)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d feeding records", len(records)), records, nil
}

func (h *Handler) recentStates(ctx context.Context, c call) (string, any, error) {
	req, err := decode[animalListRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	animal, err := id.ParseAnimalID(req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	records, err := h.svc.Observations.RecentStates(ctx, animal, req.Limit)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d state records", len(records)), records, nil
}

func (h *Handler) correctRecord(ctx context.Context, c call) (string, any, error) {
	req, err := decode[correctRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	record, err := id.ParseRecordID(req.RecordID)
	if err != nil {
		return "", nil, err
	}
	res, err := h.svc.Corrections.Correct(ctx, c.actor(), correction.Request{
		Table:    req.Table,
		RecordID: record,
		Field:    req.Field,
		NewValue: req.NewValue,
	})
	if err != nil {
		return "", nil, err
	}
	msg := fmt.Sprintf("%s of record %s changed from %s to %s", res.Field, res.RecordID, res.OldValue, res.NewValue)
	if res.RetractedAlerts > 0 {
		msg += fmt.Sprintf("; %d pending alerts retracted", res.RetractedAlerts)
	}
	return msg, res, nil
}

func (h *Handler) previewObservation(ctx context.Context, c call) (string, any, error) {
	req, err := decode[previewRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	kind, animal, err := parseKindAndAnimal(req.Kind, req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	res, err := h.svc.Anomalies.Preview(ctx, kind, animal, req.Value.String())
	if err != nil {
		return "", nil, err
	}
	return res.Message, res, nil
}

func (h *Handler) logInputWarning(ctx context.Context, c call) (string, any, error) {
	req, err := decode[inputWarningRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	kind, animal, err := parseKindAndAnimal(req.Kind, req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	value, err := id.ParseNonNegativeQuantity(req.Value.String())
	if err != nil {
		return "", nil, err
	}
	warning, err := h.svc.Anomalies.LogInputWarning(ctx, c.actor(), anomaly.InputWarning{
		AnimalID:  animal,
		Kind:      kind,
		Value:     value,
		Proceeded: req.Proceeded,
	})
	if err != nil {
		return "", nil, err
	}
	return "input warning recorded", warning, nil
}

func (h *Handler) checkAnomalies(ctx context.Context, c call) (string, any, error) {
	req, err := decode[checkRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	animal, err := id.ParseAnimalID(req.AnimalID)
	if err != nil {
		return "", nil, err
	}
	kinds := []anomaly.Kind{anomaly.KindWeight, anomaly.KindFeeding}
	if req.Kind != "" {
		kind, err := anomaly.ParseKind(req.Kind)
		if err != nil {
			return "", nil, err
		}
		kinds = []anomaly.Kind{kind}
	}
	results := make([]*anomaly.Result, 0, len(kinds))
	anomalies := 0
	for _, kind := range kinds {
		res, err := h.svc.Anomalies.Check(ctx, kind, animal)
		if err != nil {
			return "", nil, err
		}
		if res.IsAnomaly() {
			anomalies++
		}
		results = append(results, res)
	}
	return fmt.Sprintf("%d anomalies found", anomalies), results, nil
}

func (h *Handler) batchCheck(ctx context.Context, c call) (string, any, error) {
	if _, err := decode[emptyRequest](h.validate, c.data); err != nil {
		return "", nil, err
	}
	report, err := h.svc.Anomalies.BatchScan(ctx)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("scanned %d animals, %d anomalies", report.Scanned, len(report.Anomalies)), report, nil
}

func (h *Handler) pendingAlerts(ctx context.Context, c call) (string, any, error) {
	req, err := decode[pendingAlertsRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	var animal id.AnimalID
	if req.AnimalID != "" {
		if animal, err = id.ParseAnimalID(req.AnimalID); err != nil {
			return "", nil, err
		}
	}
	alerts, err := h.svc.Anomalies.PendingAlerts(ctx, animal, req.Limit)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d pending alerts", len(alerts)), alerts, nil
}

func (h *Handler) reviewAlert(ctx context.Context, c call) (string, any, error) {
	req, err := decode[reviewRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	status, err := eventlog.ParseReviewStatus(req.Status)
	if err != nil {
		return "", nil, err
	}
	alert, err := h.svc.Anomalies.ReviewAlert(ctx, c.actor(), req.AlertID, status)
	if err != nil {
		return "", nil, err
	}
	return "alert marked " + string(alert.Status), alert, nil
}

func (h *Handler) highRiskAnimals(ctx context.Context, c call) (string, any, error) {
	if _, err := decode[emptyRequest](h.validate, c.data); err != nil {
		return "", nil, err
	}
	entries, err := h.svc.Anomalies.HighRiskAnimals(ctx)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d high-risk animals", len(entries)), entries, nil
}

func (h *Handler) carelessEmployees(ctx context.Context, c call) (string, any, error) {
	if _, err := decode[emptyRequest](h.validate, c.data); err != nil {
		return "", nil, err
	}
	entries, err := h.svc.Corrections.CarelessEmployees(ctx)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d employees at or above the threshold", len(entries)), entries, nil
}

func (h *Handler) auditLogs(ctx context.Context, c call) (string, any, error) {
	req, err := decode[auditLogsRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	entries, err := h.svc.Corrections.AuditLogs(ctx, eventlog.AuditFilter{
		OperatorID:        id.EmployeeID(req.OperatorID),
		OriginalCreatorID: id.EmployeeID(req.OriginalCreatorID),
		Limit:             req.Limit,
	})
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d audit entries", len(entries)), entries, nil
}

func (h *Handler) myCorrections(ctx context.Context, c call) (string, any, error) {
	req, err := decode[limitRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	entries, err := h.svc.Corrections.MyCorrections(ctx, c.actor(), req.Limit)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d of your records were corrected", len(entries)), entries, nil
}

func (h *Handler) assignShift(ctx context.Context, c call) (string, any, error) {
	req, err := decode[assignShiftRequest](h.validate, c.data)
	if err != nil {
		return "", nil, err
	}
	employee, err := id.ParseEmployeeID(req.EmployeeID)
	if err != nil {
		return "", nil, err
	}
	task, err := id.ParseTaskID(req.TaskID)
	if err != nil {
		return "", nil, err
	}
	var animal id.AnimalID
	if req.AnimalID != "" {
		if animal, err = id.ParseAnimalID(req.AnimalID); err != nil {
			return "", nil, err
		}
	}
	shift, err := h.svc.Shifts.AssignShift(ctx, c.actor(), schedule.Assignment{
		EmployeeID: employee,
		TaskID:     task,
		AnimalID:   animal,
		Start:      req.Start,
		End:        req.End,
	})
	if err != nil {
		return "", nil, err
	}
	return "shift " + shift.ID + " assigned", shift, nil
}

func parseKindAndAnimal(rawKind, rawAnimal string) (anomaly.Kind, id.AnimalID, error) {
	kind, err := anomaly.ParseKind(rawKind)
	if err != nil {
		return "", "", err
	}
	animal, err := id.ParseAnimalID(rawAnimal)
	if err != nil {
		return "", "", err
	}
	return kind, animal, nil
}
