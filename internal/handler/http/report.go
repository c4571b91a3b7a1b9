package http

import (
	"net/http"

	"github.com/absensi-app/absensi-backend-go/internal/domain/report"
	"github.com/absensi-app/absensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// AttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
		FilterBy:   queryParam(r, "filter_by"),
		EmployeeID: queryParam(r, "employee_id"),
		Page:       queryParamInt(r, "page"),
		Limit:      queryParamInt(r, "limit"),
	}

	result, err := h.reportService.AttendanceReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
