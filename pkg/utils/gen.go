package utils

import (
	"fmt"
	"time"
)

// NewOrderNumber 订单号：毫秒时间戳 + 4位随机后缀。
// 不做唯一性探测，碰撞概率极低，数据库唯一索引兜底。
func NewOrderNumber() string {
	return fmt.Sprintf("PS-%d-%04d", time.Now().UnixMilli(), MtRand(0, 9999))
}
