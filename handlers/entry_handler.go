package handlers

import (
	"strconv"

	"hot100-service/helper"
	"hot100-service/models"
	"hot100-service/services"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	chartService services.ChartService
	Helper       *helper.HTTPHelper
}

func NewEntryHandler(chartService services.ChartService) *EntryHandler {
	return &EntryHandler{chartService: chartService}
}

func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	entry, err := h.chartService.CreateEntry(req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Chart entry created successfully", entry)
}

func (h *EntryHandler) GetEntries(c *gin.Context) {
	var params models.EntryListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	// Set defaults
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 100
	}

	entries, total, err := h.chartService.GetEntries(params)
	if err != nil {
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	pagination := h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total))

	h.Helper.SendSuccess(c, "Success", gin.H{
		"entries":    entries,
		"pagination": pagination,
	})
}

func (h *EntryHandler) GetEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid entry ID", h.Helper.EmptyJsonMap())
		return
	}

	entry, err := h.chartService.GetEntry(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Chart entry not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", entry)
}
