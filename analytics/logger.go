package analytics

import (
	"os"

	"github.com/mohitkumar/fotoflow/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFileDataCollector struct {
	fileName string
	logger   *zap.Logger
}

var _ SelectionDataCollector = new(LogFileDataCollector)

func NewLogFileDataCollector(fileName string) (*LogFileDataCollector, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.StacktraceKey = ""
	fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
	logFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	writer := zapcore.AddSync(logFile)
	core := zapcore.NewCore(fileEncoder, writer, zapcore.InfoLevel)
	return &LogFileDataCollector{
		fileName: fileName,
		logger:   zap.New(core),
	}, nil
}

func (lc *LogFileDataCollector) RecordChoice(catalog string, sessionId string, stepId string, value string, sel *model.Selection) {
	lc.logger.Info("choice", zap.String("catalog", catalog), zap.String("session", sessionId),
		zap.String("step", stepId), zap.String("value", value),
		zap.Uint64("version", sel.Version()), zap.Any("selection", sel))
}

func (lc *LogFileDataCollector) RecordQuote(catalog string, sessionId string, quote *model.Quote) {
	lc.logger.Info("quote", zap.String("catalog", catalog), zap.String("session", sessionId),
		zap.String("currency", quote.Currency), zap.String("total", quote.Total.StringFixed(2)),
		zap.Int("lines", len(quote.Lines)))
}

func (lc *LogFileDataCollector) Sync() error {
	return lc.logger.Sync()
}
