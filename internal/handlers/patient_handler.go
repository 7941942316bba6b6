package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	ucPatient "github.com/clinicstack/clinic-manager/internal/usecase/patient"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	store      *repository.GormStore
	createUC   *ucPatient.CreatePatient
	timelineUC *ucPatient.PatientTimeline
}

func NewPatientHandler(
	store *repository.GormStore,
	createUC *ucPatient.CreatePatient,
	timelineUC *ucPatient.PatientTimeline,
) *PatientHandler {
	return &PatientHandler{
		store:      store,
		createUC:   createUC,
		timelineUC: timelineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePatientRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
	DOB    string `json:"dob"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
	City   string `json:"city"`
	UHID   string `json:"uhid"`
	Notes  string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Gender *string `json:"gender"`
	City   *string `json:"city"`
	UHID   *string `json:"uhid"`
	Notes  *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	scope := middleware.Scope(c)

	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid patient data.")
		return
	}

	in := ucPatient.CreatePatientInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Age:    req.Age,
		Gender: req.Gender,
		City:   req.City,
		UHID:   req.UHID,
		Notes:  req.Notes,
	}

	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			httperr.BadRequest(c, "invalid_dob", "Date of birth must be YYYY-MM-DD.")
			return
		}
		in.DOB = &dob
	}

	p, err := h.createUC.Execute(c.Request.Context(), scope, in)
	if err != nil {
		writeError(c, err, "failed_to_create_patient", "Could not save the patient.")
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	scope := middleware.Scope(c)

	patients, err := h.store.ListPatients(c.Request.Context(), scope, c.Query("query"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Could not list patients.")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// ======================================================
// DETAIL (patient + merged timeline)
// ======================================================

func (h *PatientHandler) Get(c *gin.Context) {
	scope := middleware.Scope(c)

	result, err := h.timelineUC.Execute(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// UPDATE
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	scope := middleware.Scope(c)

	p, err := h.store.GetPatient(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid patient data.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "name_required", "Name cannot be empty.")
			return
		}
		p.Name = *req.Name
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.UHID != nil {
		p.UHID = *req.UHID
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	if err := h.store.UpdatePatient(c.Request.Context(), scope, p); err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not save the patient.")
		return
	}

	c.JSON(http.StatusOK, p)
}
