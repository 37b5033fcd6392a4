package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewlens/internal/config"
	"interviewlens/internal/model"
	"interviewlens/internal/repository"
)

func score(v float64) *float64 { return &v }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	interviewRepo := repository.NewInterviewRepo(db)
	reportRepo := repository.NewReportRepo(db)

	userID := "user_reviewer"
	now := time.Now()

	interviews := []model.Interview{
		{
			ID:      uuid.New().String(),
			UserID:  userID,
			Title:   "后端工程师一面",
			Company: "星云科技",
			Status:  model.StatusCompleted,
			Date:    now.AddDate(0, 0, -30).Format("2006-01-02"),
		},
		{
			ID:      uuid.New().String(),
			UserID:  userID,
			Title:   "基础架构二面",
			Company: "远帆网络",
			Status:  model.StatusCompleted,
			Date:    now.AddDate(0, 0, -7).Format("2006-01-02"),
		},
	}

	reports := []model.AnalysisReport{
		{
			InterviewID: interviews[0].ID,
			Duration:    "45分钟",
			Rounds:      1,
			Score:       78,
			PassRate:    70,
			GeneratedAt: now.AddDate(0, 0, -30).Format(time.RFC3339),
			QAList: []model.QAItem{
				{ID: 1, Question: "请做一下自我介绍", Answer: "我有五年后端开发经验，主要使用 Go 和分布式系统。", Score: score(80), Category: "自我介绍"},
				{ID: 2, Question: "介绍一个你主导的项目", Answer: "我主导了订单系统的重构，把单体拆成了三个服务。", Score: score(75), Category: "项目经验"},
				{ID: 3, Question: "如何设计一个高并发的秒杀系统？", Answer: "用消息队列削峰，库存放在 Redis 里预扣。", Score: score(68), Category: "系统设计"},
			},
		},
		{
			InterviewID: interviews[1].ID,
			Duration:    "60分钟",
			Rounds:      1,
			Score:       82,
			PassRate:    80,
			GeneratedAt: now.AddDate(0, 0, -7).Format(time.RFC3339),
			QAList: []model.QAItem{
				{ID: 1, Question: "谈谈你对微服务架构的理解", Answer: "微服务的核心是按业务边界拆分，配合服务发现和熔断。", Score: score(85), Category: "系统设计"},
				{ID: 2, Question: "算法题：如何在海量数据里找到出现次数最多的前 K 个元素？", Answer: "先分片哈希统计，再用小顶堆合并。", Score: score(88), Category: "算法与编码"},
				{ID: 3, Question: "你为什么选择我们公司？", Answer: "我认可你们在基础设施领域的技术积累。", Score: score(72), Category: "求职动机"},
			},
		},
	}

	for i := range interviews {
		if err := interviewRepo.Create(ctx, &interviews[i]); err != nil {
			log.Fatalf("Failed to seed interview: %v", err)
		}
		log.Printf("Seeded interview %s (%s)", interviews[i].ID, interviews[i].Title)
	}
	for i := range reports {
		if err := reportRepo.Save(ctx, &reports[i]); err != nil {
			log.Fatalf("Failed to seed report: %v", err)
		}
		log.Printf("Seeded report for interview %s", reports[i].InterviewID)
	}

	log.Println("Seeding complete")
}
