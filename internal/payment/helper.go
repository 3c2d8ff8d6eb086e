package payment

import (
	"database/sql"
	"medmoney/pkg/asaas"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const mockPixEncodedImage = "iVBORw0KGgoAAAANSUhEUgAAAQAAAAEACAMAAABrrFhUAAAABlBMVEX///8AAABVwtN+AAAF/UlEQVR4nO2dW5LsKAxEtf+/PmfwI+LeDrCFRCKVWXXHRN8qUJakBJ/Pzs7Ozs7Ozs7Ozs5f5PXy/Drw7/jj5/XA87e1Q358P1Wf98CvFSXg9YXP6/VQjuS1vgSM0lkCHrJbCMSAqzXotwKMB+LXr7HoFc+vNa9h9nuvGKgK1AsQCRDXbk0b5eD1jY9B8nPbXQJOgkzAnNYvLbgHmPxYL2GkJAJECYgCgOVA18J4HcSaXwOCBKRGTPL4nqpFSC2IWU8HXeaQhSQCkAaEEY8WnIPZ91eB5MnEAPKhVH0vJCmhkMICMBGQCJCvxmhvK/QgSUDsDVIfJgKidrcQELTwJQlQFaCuhQak5wcJ8DXAtSBmQCZgBzIB8fuJgHdX4DpRhL+hg1MIOt8tgJoOigasGU7BvRXgkrAjoGJPkPhYgLpXaKkCKQfdmQN7JeA0INoNnwdIGpC8QBwFpOpf1IKXAGwFfCMQCXg9rIGYGUC/FwyQlkSJL2gAB+Cth2fGnQnw1b+lgdgIqPcA3Hng5QWYF/CzHXdcC6s6aHc7IAqwkoD0/EKAN6LhfA+I1f+wEwBXA0zCIQVSE5YkQE0EuhYDpx2Iat9vB5oaaHmA5APiUBASECOQtYAaUNEAGIFnBaAH4MYFJAGYuAqoB+DHEeDcfpKAtgAmYdTBbgpgAeY1oDcDTOzJI1EoBNIb4D4haMBIwGgGqOugaPWHBsYzQTENXAtpRGaEB0Bd/PsrMJKAE+ApgDoQtTzA1P9sBAaNgNcCbkl4LoH+hRvkP58IvLqCKAGvdlBtBXTvQMOghoDvnQpAAlECJPAvlICsAYMWVN3fFYiK/I4KQBpokzBUgFbg9XBPwJ4GFnqANwJOA9YOOB1sjoL10dBmAVg/D0wdwZwNbGkgqMA8AdUU0AXYE2CtBk8J+FXwtwLeFAwNYAqyOaGLRyXgW3EPGGgYB+pWAAzAS8LeCMQUvCnB/K4YZAOxHRyQcHD/LoEwDXB9cOsFqVdNVQ1EvZ9X4Pb7AQVGRgCTqd6hwK0VqHnBMQLXQ/AIc4/A9RD8UPX+ywIkGVTXBE8VgCdKQH8/uJkCRhjQgPGCUIDxPeFFAVIXxFaAeoJBgZkRkB3BtAYOEwAjUCMAj0SxH4wE4NMlIBEgS8BAAJBAOeHHAsgORCdQCvDz/1ABsRGUErA9Eb4qQFwRbiRgCZAPSvNBQQKyBpICLAlADXhdHo4SkCTAjQHoAU4HwwvSGnCaE5AagVIBWvW/ZMCmBBgfULTgyHlASYG4EYAXJgJsGlCsQPEBZwmYNoC7gdSGcXF0NAKpBdQmRAqkHvjYeWCrgloCYAJiBMCBkxHIClBygFkNnBXAU0HPDWT1L4fFZyMwfRwfaMB0RThbARyCaAmAYYDXA6INgAPgE0FCtwTwVHC6E6hUwGnCiQB5LiDPCt2LU02Qdx5I08HJNWD1gTgPkDh+JFrXQPQANyMY3Z84C0gXRqMEtC5QPGD6MwH5mZjYBqY2AJaEuBoYuicGJGDsAvEsqDgZLK8JFQnAQSDZEXseCG5AdgPnxsQHR8SnXBKVFUA/gFHACeB3YlqsQJGAugL9kmiZEM4kIKwJ0dXRmgD6pGg0AqMCUwHqgZA2IWppIFoBuxpcCDCdDuICUFSAJCDGAO2BGC+MfSkBbRXgJcBrhJMPKAaAUXC7BpTCxwiAH3RLQnQtQB2K0BZALycHs3+fB3gvuCpAuz/OGiBmoAyLTUuC9/egHrjyAnEI7NOA/P0ZDYjNcJEAOSXqRqAswKQGuF8TgPvG8BI0fkPQfEKoJwDoAX0B9DQAj6MKqFpQVgBW/YgHvAgoZmB+JI7AJGAvCcsKgPKnVxTKBaiXRQkJqAmAJ8JrPpAkYDYaHhiQCDinAmjAfRYYe6Hog7IBoQAzGyArQN0MJAlgtwiA+/n80KKwuB8kAJaBKAEXGjBdHe9rYMUFBgagAbujgZvt4N9OQBaC8QPsn/8dXGNnZ2dnZ2dnZ2dn5+fyF7zlU+Vg0n2pAAAAAElFTkSuQmCC"

var nonDigits = regexp.MustCompile(`\D`)

func onlyDigits(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// syntheticID gera o sufixo dos identificadores simulados (pay_xxx, cus_xxx).
func syntheticID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func mockPixQrCode() *asaas.PixQrCode {
	return &asaas.PixQrCode{
		EncodedImage:   mockPixEncodedImage,
		Payload:        "pix://https://sandbox.asaas.com/i/" + syntheticID(),
		ExpirationDate: time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func todayDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

// nextBillingDate avança a data conforme o ciclo de cobrança.
func nextBillingDate(nextDueDate, cycle string) time.Time {
	base := time.Now()
	if nextDueDate != "" {
		if parsed, err := time.Parse("2006-01-02", nextDueDate); err == nil {
			base = parsed
		}
	}
	if cycle == "YEARLY" {
		return base.AddDate(1, 0, 0)
	}
	return base.AddDate(0, 1, 0)
}

func nullInt64(value int64) sql.NullInt64 {
	if value == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: value, Valid: true}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
