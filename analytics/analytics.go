package analytics

import (
	"fmt"

	"github.com/mohitkumar/fotoflow/model"
)

type DataCollectorConfig struct {
	FileName      string
	CollectorType DataCollectorType
}

type DataCollectorType string

const LOG_FILE_DATA_COLLECTOR DataCollectorType = "LOG_FILE_DATA_COLLECTOR"
const NOOP_DATA_COLLECTOR DataCollectorType = "NOOP_DATA_COLLECTOR"

// SelectionDataCollector receives every accepted answer and every rendered
// quote of a session.
type SelectionDataCollector interface {
	RecordChoice(catalog string, sessionId string, stepId string, value string, sel *model.Selection)
	RecordQuote(catalog string, sessionId string, quote *model.Quote)
}

func NewDataCollector(config DataCollectorConfig) (SelectionDataCollector, error) {
	switch config.CollectorType {
	case LOG_FILE_DATA_COLLECTOR:
		return NewLogFileDataCollector(config.FileName)
	case NOOP_DATA_COLLECTOR, "":
		return Noop, nil
	}
	return nil, fmt.Errorf("unknown data collector %s", config.CollectorType)
}

var Noop SelectionDataCollector = noopDataCollector{}

type noopDataCollector struct{}

func (noopDataCollector) RecordChoice(string, string, string, string, *model.Selection) {}
func (noopDataCollector) RecordQuote(string, string, *model.Quote)                      {}
