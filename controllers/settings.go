// controllers/settings.go
package controllers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateSettingInput defines the expected JSON structure for updating branding
type UpdateSettingInput struct {
	BusinessName   *string `json:"businessName"`
	ContactEmail   *string `json:"contactEmail"`
	ContactPhone   *string `json:"contactPhone"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	Logo           *string `json:"logo"`
}

// Branding is read on nearly every page load, so settings are served from a
// short-lived per-salon cache. UpdateSettings is the only writer and drops the
// cached copy after committing.
const settingCacheTTL = 30 * time.Second

type cachedSetting struct {
	setting models.Setting
	loaded  time.Time
}

var (
	settingCacheMu sync.Mutex
	settingCache   = make(map[uuid.UUID]cachedSetting)
)

func loadSetting(salonID uuid.UUID) (models.Setting, error) {
	settingCacheMu.Lock()
	cached, ok := settingCache[salonID]
	settingCacheMu.Unlock()

	if ok && time.Since(cached.loaded) < settingCacheTTL {
		return cached.setting, nil
	}

	var setting models.Setting
	if err := config.DB.Where("salon_id = ?", salonID).First(&setting).Error; err != nil {
		return models.Setting{}, err
	}

	settingCacheMu.Lock()
	settingCache[salonID] = cachedSetting{setting: setting, loaded: time.Now()}
	settingCacheMu.Unlock()

	return setting, nil
}

func invalidateSetting(salonID uuid.UUID) {
	settingCacheMu.Lock()
	delete(settingCache, salonID)
	settingCacheMu.Unlock()
}

// GetSettings returns the salon's branding configuration
func GetSettings(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	setting, err := loadSetting(salonUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Settings not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UpdateSettings updates the salon's branding configuration
func UpdateSettings(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input UpdateSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var setting models.Setting
	if err := config.DB.Where("salon_id = ?", salonUUID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Settings not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.BusinessName != nil {
		if *input.BusinessName == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "businessName: must not be empty")
			return
		}
		setting.BusinessName = *input.BusinessName
	}
	if input.ContactEmail != nil {
		setting.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		setting.ContactPhone = *input.ContactPhone
	}
	if input.PrimaryColor != nil {
		if !utils.ValidateHexColor(*input.PrimaryColor) {
			utils.RespondWithError(c, http.StatusBadRequest, "primaryColor: must be #RRGGBB")
			return
		}
		setting.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		if !utils.ValidateHexColor(*input.SecondaryColor) {
			utils.RespondWithError(c, http.StatusBadRequest, "secondaryColor: must be #RRGGBB")
			return
		}
		setting.SecondaryColor = *input.SecondaryColor
	}
	if input.Logo != nil {
		setting.Logo = *input.Logo
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	invalidateSetting(salonUUID)

	c.JSON(http.StatusOK, setting)
}
