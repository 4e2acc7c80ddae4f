package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mamisoa/clinic-portal/internal/models"
	"github.com/mamisoa/clinic-portal/internal/utils"
)

// Router builds the gin engine serving the clinic API surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
	}))

	api := r.Group("/api")
	{
		api.POST("/login", s.login)
		api.POST("/register", s.registerUser)
	}

	authenticated := api.Group("/")
	authenticated.Use(s.authMiddleware())
	{
		authenticated.GET("/patients", s.getAllPatients)
		authenticated.GET("/patients/:id", s.getPatientByID)

		receptionist := authenticated.Group("/receptionist")
		receptionist.Use(authorizeRoles(models.RoleReceptionist))
		{
			receptionist.POST("/patients", s.createPatient)
			receptionist.PUT("/patients/:id", s.updatePatient)
			receptionist.DELETE("/patients/:id", s.deletePatient)
		}

		doctor := authenticated.Group("/doctor")
		doctor.Use(authorizeRoles(models.RoleDoctor))
		{
			doctor.PUT("/patients/:id/notes", s.updateDoctorNotes)
		}
	}

	return r
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	u, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok || !utils.CheckPasswordHash(req.Password, u.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(u.Username, u.Role, s.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"username": u.Username,
			"role":     u.Role,
		},
	})
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (s *Server) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.KnownRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be 'receptionist' or 'doctor'"})
		return
	}

	s.mu.Lock()
	_, exists := s.users[req.Username]
	s.mu.Unlock()
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}
	if err := s.AddUser(req.Username, req.Password, req.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "username": req.Username, "role": req.Role})
}

func (s *Server) getAllPatients(c *gin.Context) {
	s.mu.Lock()
	patients := make([]models.Patient, 0, len(s.patients))
	for id := uint(1); id < s.nextID; id++ {
		if p, ok := s.patients[id]; ok {
			patients = append(patients, *p)
		}
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (s *Server) patientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) getPatientByID(c *gin.Context) {
	id, ok := s.patientID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	p, found := s.patients[id]
	var copied models.Patient
	if found {
		copied = *p
	}
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": copied})
}

type createPatientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Contact   string `json:"contact" binding:"required"`
	Address   string `json:"address"`
}

func (s *Server) createPatient(c *gin.Context) {
	var req createPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	taken := s.contactTaken(req.Contact, 0)
	s.mu.Unlock()
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Patient with this contact already exists"})
		return
	}

	p := s.AddPatient(models.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Contact:   req.Contact,
		Address:   req.Address,
		Status:    models.StatusActive,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Patient created successfully", "patient": p})
}

type updatePatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Contact     string `json:"contact"`
	Address     string `json:"address"`
	DoctorNotes string `json:"doctor_notes"`
	Status      string `json:"status"`
}

func (s *Server) updatePatient(c *gin.Context) {
	id, ok := s.patientID(c)
	if !ok {
		return
	}
	var req updatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, found := s.patients[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	if req.Contact != "" && s.contactTaken(req.Contact, id) {
		c.JSON(http.StatusConflict, gin.H{"error": "Patient with this contact already exists"})
		return
	}

	// Empty fields are "no change", as in the real backend.
	if req.FirstName != "" {
		p.FirstName = req.FirstName
	}
	if req.LastName != "" {
		p.LastName = req.LastName
	}
	if req.DOB != "" {
		p.DOB = req.DOB
	}
	if req.Gender != "" {
		p.Gender = req.Gender
	}
	if req.Contact != "" {
		p.Contact = req.Contact
	}
	if req.Address != "" {
		p.Address = req.Address
	}
	if req.DoctorNotes != "" {
		p.DoctorNotes = req.DoctorNotes
	}
	if req.Status != "" {
		p.Status = req.Status
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully", "patient": *p})
}

func (s *Server) deletePatient(c *gin.Context) {
	id, ok := s.patientID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.patients[id]
	if found {
		delete(s.patients, id)
	}
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

type updateNotesRequest struct {
	DoctorNotes string `json:"doctor_notes"`
	Status      string `json:"status"`
}

func (s *Server) updateDoctorNotes(c *gin.Context) {
	id, ok := s.patientID(c)
	if !ok {
		return
	}
	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DoctorNotes == "" && req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either doctor_notes or status is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, found := s.patients[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	if req.DoctorNotes != "" {
		p.DoctorNotes = req.DoctorNotes
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor notes and status updated successfully"})
}
