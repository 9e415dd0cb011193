package mapper

import (
	"github.com/YC815/entropy-backend/internal/adapter/http/dto"
	"github.com/YC815/entropy-backend/internal/core/domain"
)

func ToDashboardResponse(snapshot domain.StateSnapshot) dto.DashboardResponse {
	breakdown := make([]dto.StressItem, 0, len(snapshot.Breakdown))
	for _, item := range snapshot.Breakdown {
		breakdown = append(breakdown, dto.StressItem{
			TaskTitle:    item.TaskTitle,
			DaysLeft:     item.DaysLeft,
			StressImpact: item.StressImpact,
		})
	}

	return dto.DashboardResponse{
		UserInfo: dto.UserInfo{
			Level:         snapshot.User.Level,
			CurrentXP:     snapshot.User.CurrentXP,
			BlackholeDays: snapshot.User.BlackholeDays,
		},
		Integrity:       snapshot.Integrity,
		TotalStress:     snapshot.TotalStress,
		Multiplier:      snapshot.Multiplier,
		Status:          string(snapshot.Status),
		StressBreakdown: breakdown,
	}
}
