// attachments.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/types"
	"github.com/localnerve/qms/internal/utils"
	"go.uber.org/zap"
)

// UploadField is the multipart field carrying the file
const UploadField = "file"

// AttachmentHandler handles attachment routes
type AttachmentHandler struct {
	Attachments *services.AttachmentService
	Log         *zap.Logger
}

// ListAttachments handles GET /api/attachments/:complaintId
// @Summary List attachments
// @Tags Attachments
// @Produce json
// @Security BearerAuth
// @Param complaintId path string true "Complaint ID"
// @Success 200 {array} models.Attachment
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /attachments/{complaintId} [get]
func (h *AttachmentHandler) ListAttachments(c *fiber.Ctx) error {
	attachments, err := h.Attachments.List(c.UserContext(), c.Params("complaintId"))
	if err != nil {
		return serviceError(c, h.Log, "list attachments", err)
	}
	return c.Status(fiber.StatusOK).JSON(attachments)
}

// UploadAttachment handles POST /api/attachments/:complaintId
// @Summary Upload an attachment
// @Description Images, PDF, Excel and Word files up to the configured size limit
// @Tags Attachments
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param complaintId path string true "Complaint ID"
// @Param file formData file true "Attachment"
// @Success 201 {object} services.UploadedAttachment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /attachments/{complaintId} [post]
func (h *AttachmentHandler) UploadAttachment(c *fiber.Ctx) error {
	fh, err := c.FormFile(UploadField)
	if err != nil {
		return types.NewError(fiber.StatusBadRequest, types.ErrTypeValidation, "Multipart field %q is required", UploadField)
	}

	uploaded, err := h.Attachments.Upload(c.UserContext(), c.Params("complaintId"), uploadFrom(fh), actorID(c))
	if err != nil {
		return serviceError(c, h.Log, "upload attachment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(uploaded)
}

func uploadFrom(fh *multipart.FileHeader) services.Upload {
	return services.Upload{
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get(fiber.HeaderContentType),
		Size:         fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// DownloadAttachment handles GET /api/attachments/:complaintId/:id/download
// @Summary Get a download link
// @Description Mints a fresh time-limited signed URL
// @Tags Attachments
// @Produce json
// @Security BearerAuth
// @Param complaintId path string true "Complaint ID"
// @Param id path string true "Attachment ID"
// @Success 200 {object} services.DownloadLink
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /attachments/{complaintId}/{id}/download [get]
func (h *AttachmentHandler) DownloadAttachment(c *fiber.Ctx) error {
	link, err := h.Attachments.DownloadURL(c.UserContext(), c.Params("complaintId"), c.Params("id"))
	if err != nil {
		return serviceError(c, h.Log, "create download link", err)
	}
	return c.Status(fiber.StatusOK).JSON(link)
}

// DeleteAttachment handles DELETE /api/attachments/:complaintId/:id
// @Summary Delete an attachment
// @Tags Attachments
// @Produce json
// @Security BearerAuth
// @Param complaintId path string true "Complaint ID"
// @Param id path string true "Attachment ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /attachments/{complaintId}/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *fiber.Ctx) error {
	if err := h.Attachments.Delete(c.UserContext(), c.Params("complaintId"), c.Params("id"), actorID(c)); err != nil {
		return serviceError(c, h.Log, "delete attachment", err)
	}
	return utils.MessageResponse(c, "Attachment deleted")
}
