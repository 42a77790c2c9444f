package email

import "log"

type EmailJob struct {
	Type string
	Data BlackcartEmailData
}

type EmailWorker struct {
	Jobs chan EmailJob
	Quit chan bool
}

type EmailWorkerPool struct {
	Jobs    chan EmailJob
	Workers []EmailWorker
}

func BlackcartEmailWorkerPoolInstance(size int) *EmailWorkerPool {
	jobs := make(chan EmailJob, size)
	workers := make([]EmailWorker, size)

	for i := 0; i < size; i++ {
		workers[i] = EmailWorker{
			Jobs: jobs,
			Quit: make(chan bool),
		}
	}

	return &EmailWorkerPool{Jobs: jobs, Workers: workers}
}

func (pool *EmailWorkerPool) Start() {
	for id, worker := range pool.Workers {
		log.Printf("Email worker %d started!\n", id)
		go worker.Start()
	}
}

func (pool *EmailWorkerPool) Stop() {
	for id, worker := range pool.Workers {
		log.Printf("Email worker %d stopped!!\n", id)
		go worker.Stop()
	}
}

func (pool *EmailWorkerPool) Enqueue(job EmailJob) {
	pool.Jobs <- job
}

func (w *EmailWorker) Start() {
	go func() {
		for {
			select {
			case job := <-w.Jobs:
				switch job.Type {
				case "welcome":
					log.Printf("BlackcartEmail: sending welcome mail to new seller %s", job.Data.Email)
					SendSellerWelcomeEmail(job.Data)
				case "password_reset":
					log.Printf("BlackcartEmail: seller %s requested a password reset", job.Data.Email)
					SendPasswordResetEmail(job.Data)
				case "password_reset_success":
					log.Printf("BlackcartEmail: password reset confirmed for %s", job.Data.Email)
					SendPasswordResetSuccessfulEmail(job.Data)
				case "order_seller":
					log.Printf("BlackcartEmail: new order %s notification to seller %s", job.Data.OrderRef, job.Data.Email)
					SendOrderReceivedEmail(job.Data)
				case "order_buyer":
					log.Printf("BlackcartEmail: order %s confirmation to buyer %s", job.Data.OrderRef, job.Data.Email)
					SendOrderConfirmationEmail(job.Data)
				}
			case <-w.Quit:
				return
			}
		}
	}()
}

func (w *EmailWorker) Stop() {
	w.Quit <- true
}
